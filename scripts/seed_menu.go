package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description *string
	CreatedAt   time.Time
}

func (Category) TableName() string {
	return "categories"
}

type MenuItem struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description *string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  uint            `gorm:"not null"`
	ImageURL    *string
	IsAvailable bool `gorm:"not null"`
	CreatedAt   time.Time
}

func (MenuItem) TableName() string {
	return "menu_items"
}

type seedItem struct {
	name        string
	description string
	price       string
	available   bool
}

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "restaurant.sqlite", "Path to the SQLite database file")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	menu := map[string][]seedItem{
		"Starters": {
			{"Spring Rolls", "Crispy vegetable rolls with sweet chili dip", "4.50", true},
			{"Tom Yum Soup", "Hot and sour soup with prawns and lemongrass", "6.50", true},
			{"Satay Skewers", "Grilled chicken skewers with peanut sauce", "5.50", true},
		},
		"Mains": {
			{"Pad Thai", "Rice noodles with tamarind, egg and crushed peanuts", "10.50", true},
			{"Green Curry", "Coconut green curry with bamboo shoots and basil", "11.00", true},
			{"Chicken Fried Rice", "Wok-fried rice with chicken, egg and scallions", "9.00", true},
			{"Massaman Beef", "Slow-cooked beef in massaman curry with potatoes", "12.50", false},
		},
		"Drinks": {
			{"Thai Iced Tea", "Sweet black tea with condensed milk over ice", "3.50", true},
			{"Fresh Coconut", "Chilled young coconut served in the shell", "4.00", true},
		},
		"Desserts": {
			{"Mango Sticky Rice", "Ripe mango over coconut sticky rice", "6.00", true},
		},
	}

	created := 0
	for categoryName, items := range menu {
		category := getOrCreateCategory(db, categoryName)
		if category == nil {
			log.Fatal("Failed to get or create category:", categoryName)
		}

		for _, item := range items {
			// Skip items that were seeded on a previous run
			var existing MenuItem
			if err := db.Where("name = ? AND category_id = ?", item.name, category.ID).First(&existing).Error; err == nil {
				fmt.Printf("Menu item already exists: %s\n", item.name)
				continue
			}

			description := item.description
			record := MenuItem{
				Name:        item.name,
				Description: &description,
				Price:       decimal.RequireFromString(item.price),
				CategoryID:  category.ID,
				IsAvailable: item.available,
				CreatedAt:   time.Now(),
			}
			if err := db.Create(&record).Error; err != nil {
				log.Fatal("Failed to create menu item:", err)
			}
			created++
			fmt.Printf("✓ Created menu item: %s (%s) at %s\n", record.Name, categoryName, record.Price.StringFixed(2))
		}
	}

	fmt.Printf("\nSeeding complete: %d new menu items\n", created)
	fmt.Println("\nBrowse the menu with:")
	fmt.Printf("curl 'http://localhost:8080/api/v1/menu-items?available_only=false'\n")
}

// getOrCreateCategory gets or creates a category with the given name
func getOrCreateCategory(db *gorm.DB, name string) *Category {
	var category Category

	// Try to find existing category
	if err := db.Where("name = ?", name).First(&category).Error; err == nil {
		fmt.Printf("Found existing category: %s (ID: %d)\n", category.Name, category.ID)
		return &category
	}

	// Create new category
	category = Category{
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := db.Create(&category).Error; err != nil {
		log.Printf("Failed to create category: %v", err)
		return nil
	}

	fmt.Printf("✓ Created category: %s (ID: %d)\n", category.Name, category.ID)
	return &category
}
