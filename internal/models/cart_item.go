package models

import (
	"time"
)

// CartItem is one menu item in a session's cart. The composite unique
// index backs the merge-on-add upsert: at most one row may exist per
// (session_id, menu_item_id) pair.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionID  string    `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"session_id"`
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"menu_item_id"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}
