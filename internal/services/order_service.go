package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateOrderInput carries the customer fields supplied at checkout
type CreateOrderInput struct {
	SessionID     string  `json:"session_id" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Notes         *string `json:"notes"`
}

// OrderService converts carts into immutable orders and manages order
// status transitions
type OrderService interface {
	// CreateOrder snapshots the session's cart into a new order: it
	// computes the total, persists the order with one item per cart row
	// (freezing each menu item's current price) and clears the cart, all
	// within a single transaction
	CreateOrder(input CreateOrderInput) (models.Order, error)
	// GetOrder retrieves an order with its items; nil when not found
	GetOrder(id uint) (*models.Order, error)
	// GetOrders retrieves all orders ascending by creation time
	GetOrders() ([]models.Order, error)
	// UpdateOrderStatus sets the status of an existing order
	UpdateOrderStatus(id uint, status models.OrderStatus) (models.Order, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) CreateOrder(input CreateOrderInput) (models.Order, error) {
	var order models.Order
	var itemCount int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		err := tx.Preload("MenuItem").Where("session_id = ?", input.SessionID).Find(&cartItems).Error
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}
		itemCount = len(cartItems)

		total := decimal.Zero
		for _, cartItem := range cartItems {
			lineTotal := cartItem.MenuItem.Price.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
			total = total.Add(lineTotal)
		}

		order = models.Order{
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			CustomerEmail: input.CustomerEmail,
			Notes:         input.Notes,
			TotalAmount:   total,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.OrderPaymentPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:     order.ID,
				MenuItemID:  cartItem.MenuItemID,
				Quantity:    cartItem.Quantity,
				PriceAtTime: cartItem.MenuItem.Price,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		return tx.Where("session_id = ?", input.SessionID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	log.WithFields(log.Fields{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"item_count":   itemCount,
	}).Info("Order created from cart")

	var created models.Order
	if err := s.db.Preload("Items.MenuItem").First(&created, order.ID).Error; err != nil {
		return models.Order{}, err
	}
	return created, nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items.MenuItem").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *orderService) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items.MenuItem").Order("created_at ASC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) UpdateOrderStatus(id uint, status models.OrderStatus) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, err
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return models.Order{}, err
	}

	var updated models.Order
	if err := s.db.First(&updated, id).Error; err != nil {
		return models.Order{}, err
	}
	return updated, nil
}
