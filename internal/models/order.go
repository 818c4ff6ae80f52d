package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the kitchen-side lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further status change is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderPaymentStatus tracks how the order as a whole has been settled,
// independently of the lifecycle of individual payment attempts.
type OrderPaymentStatus string

const (
	OrderPaymentPending  OrderPaymentStatus = "pending"
	OrderPaymentPaid     OrderPaymentStatus = "paid"
	OrderPaymentFailed   OrderPaymentStatus = "failed"
	OrderPaymentRefunded OrderPaymentStatus = "refunded"
)

// Order is an immutable snapshot of a cart at checkout time. TotalAmount
// is computed once at creation and never recomputed.
type Order struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	CustomerName     string             `gorm:"not null" json:"customer_name"`
	CustomerPhone    *string            `json:"customer_phone"`
	CustomerEmail    *string            `json:"customer_email"`
	TotalAmount      decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status           OrderStatus        `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus    OrderPaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentMethod    *string            `json:"payment_method"`
	PaymentReference *string            `json:"payment_reference"`
	Notes            *string            `json:"notes"`
	Items            []OrderItem        `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// OrderItem is one line of an order. PriceAtTime freezes the menu item's
// price at creation so order history never drifts when the catalog changes.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	MenuItemID  uint            `gorm:"not null" json:"menu_item_id"`
	MenuItem    *MenuItem       `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	PriceAtTime decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_time"`
	CreatedAt   time.Time       `json:"created_at"`
}
