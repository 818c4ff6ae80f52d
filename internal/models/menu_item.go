package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a single orderable dish. Price is stored as an exact
// decimal so repeated arithmetic never accumulates float drift.
type MenuItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ImageURL    *string         `json:"image_url"`
	IsAvailable bool            `gorm:"not null" json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}
