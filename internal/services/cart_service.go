package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToCartInput carries the fields accepted when adding a menu item to a
// session's cart
type AddToCartInput struct {
	SessionID  string `json:"session_id" binding:"required"`
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// CartService provides methods to mutate and read session-scoped carts
type CartService interface {
	// AddToCart inserts a cart item, or merges into the existing row for
	// the same (session, menu item) pair by incrementing its quantity
	AddToCart(input AddToCartInput) (models.CartItem, error)
	// UpdateCartItem overwrites the quantity of an existing cart item
	UpdateCartItem(id uint, quantity int) (models.CartItem, error)
	// RemoveFromCart deletes a cart item; false means nothing was there
	RemoveFromCart(id uint) (bool, error)
	// ClearCart deletes every cart item of a session; clearing an already
	// empty cart is still a success
	ClearCart(sessionID string) (bool, error)
	// GetCart retrieves a session's cart items joined with live menu item
	// details
	GetCart(sessionID string) ([]models.CartItem, error)
}

type cartService struct {
	db *gorm.DB
}

// NewCartService creates a new instance of CartService
func NewCartService(db *gorm.DB) CartService {
	return &cartService{db: db}
}

func (s *cartService) AddToCart(input AddToCartInput) (models.CartItem, error) {
	var menuItem models.MenuItem
	if err := s.db.First(&menuItem, input.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrNotFound
		}
		return models.CartItem{}, err
	}
	if !menuItem.IsAvailable {
		return models.CartItem{}, ErrUnavailable
	}

	// Atomic upsert against the (session_id, menu_item_id) unique index:
	// two concurrent adds must never produce duplicate rows, so the
	// merge is not implemented as read-then-write.
	item := models.CartItem{
		SessionID:  input.SessionID,
		MenuItemID: input.MenuItemID,
		Quantity:   input.Quantity,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", input.Quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return models.CartItem{}, err
	}

	// The surviving row keeps its original id and created_at when the
	// upsert merged, so read it back instead of trusting the insert.
	var result models.CartItem
	err = s.db.Where("session_id = ? AND menu_item_id = ?", input.SessionID, input.MenuItemID).
		First(&result).Error
	if err != nil {
		return models.CartItem{}, err
	}
	return result, nil
}

func (s *cartService) UpdateCartItem(id uint, quantity int) (models.CartItem, error) {
	result := s.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if result.Error != nil {
		return models.CartItem{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CartItem{}, ErrNotFound
	}

	var item models.CartItem
	if err := s.db.First(&item, id).Error; err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

func (s *cartService) RemoveFromCart(id uint) (bool, error) {
	result := s.db.Delete(&models.CartItem{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *cartService) ClearCart(sessionID string) (bool, error) {
	err := s.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *cartService) GetCart(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("MenuItem").Where("session_id = ?", sessionID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
