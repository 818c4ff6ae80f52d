package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-resto-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-resto-api/internal/config"
	"github.com/franciscosanchezn/gin-resto-api/internal/controllers"
	"github.com/franciscosanchezn/gin-resto-api/internal/database"
	"github.com/franciscosanchezn/gin-resto-api/internal/gateway"
	"github.com/franciscosanchezn/gin-resto-api/internal/middleware"
	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/franciscosanchezn/gin-resto-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                 *gorm.DB
	categoryService    services.CategoryService
	menuService        services.MenuService
	cartService        services.CartService
	orderService       services.OrderService
	paymentService     services.PaymentService
	categoryController *controllers.CategoryController
	menuController     *controllers.MenuController
	cartController     *controllers.CartController
	orderController    *controllers.OrderController
	paymentController  *controllers.PaymentController
	configuration      *config.Config
)

// @title Restaurant API
// @version 1.0
// @description A restaurant ordering API with menu catalog, session carts, orders and QR payments
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	categoryService = services.NewCategoryService(db)
	menuService = services.NewMenuService(db)
	cartService = services.NewCartService(db)
	orderService = services.NewOrderService(db)
	paymentService = services.NewPaymentService(db, buildOracle(configuration))

	categoryController = controllers.NewCategoryController(categoryService)
	menuController = controllers.NewMenuController(menuService)
	cartController = controllers.NewCartController(cartService)
	orderController = controllers.NewOrderController(orderService)
	paymentController = controllers.NewPaymentController(paymentService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// buildOracle selects the payment oracle implementation from configuration
// The manual oracle is the default: payment status then only changes through
// explicit status updates
func buildOracle(conf *config.Config) gateway.Oracle {
	if conf.PaymentOracle == config.OracleSimulated {
		log.WithField("paid_probability", conf.PaymentPaidProbability).Warn("Using simulated payment oracle, do not run this in production")
		return gateway.SimulatedOracle{PaidProbability: conf.PaymentPaidProbability}
	}
	return gateway.ManualOracle{}
}

// setupDatabase initializes the database connection and returns a gorm.DB instance
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	checkPanicErr(database.Migrate(db))

	// Create only if is empty
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with initial data
func seedDatabase() {
	log.Info("Seeding database with initial data")
	mains := models.Category{Name: "Mains", Description: strPtr("Wok dishes and rice plates")}
	drinks := models.Category{Name: "Drinks", Description: strPtr("Cold and hot beverages")}
	desserts := models.Category{Name: "Desserts", Description: strPtr("Sweet endings")}
	for _, category := range []*models.Category{&mains, &drinks, &desserts} {
		db.Create(category)
	}

	items := []models.MenuItem{
		{Name: "Pad Thai", Price: decimal.RequireFromString("10.50"), CategoryID: mains.ID, IsAvailable: true},
		{Name: "Chicken Fried Rice", Price: decimal.RequireFromString("9.00"), CategoryID: mains.ID, IsAvailable: true},
		{Name: "Thai Iced Tea", Price: decimal.RequireFromString("3.50"), CategoryID: drinks.ID, IsAvailable: true},
		{Name: "Mango Sticky Rice", Price: decimal.RequireFromString("6.00"), CategoryID: desserts.ID, IsAvailable: true},
	}
	for _, item := range items {
		db.Create(&item)
	}
	log.Info("Database seeded successfully")
}

// strPtr returns a pointer to the given string
func strPtr(s string) *string {
	return &s
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		// Menu catalog routes
		v1.GET("/categories", categoryController.GetCategories)
		v1.POST("/categories", categoryController.CreateCategory)
		v1.GET("/menu-items", menuController.GetMenuItems)
		v1.POST("/menu-items", menuController.CreateMenuItem)
		v1.PATCH("/menu-items/:id", menuController.UpdateMenuItem)

		// Session cart routes
		v1.GET("/cart/:sessionID", cartController.GetCart)
		v1.DELETE("/cart/:sessionID", cartController.ClearCart)
		v1.POST("/cart/items", cartController.AddToCart)
		v1.PUT("/cart/items/:id", cartController.UpdateCartItem)
		v1.DELETE("/cart/items/:id", cartController.RemoveFromCart)

		// Order routes
		v1.POST("/orders", orderController.CreateOrder)
		v1.GET("/orders", orderController.GetOrders)
		v1.GET("/orders/:id", orderController.GetOrder)
		v1.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)

		// Payment routes
		v1.POST("/payments", paymentController.CreatePayment)
		v1.GET("/payments/:id", paymentController.GetPayment)
		v1.GET("/payments/:id/status", paymentController.CheckPaymentStatus)
		v1.PATCH("/payments/:id/status", paymentController.UpdatePaymentStatus)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-resto-api",
	})
}
