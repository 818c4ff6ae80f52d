package models

import (
	"time"
)

// Category groups menu items for display (e.g. "Appetizers", "Desserts")
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
