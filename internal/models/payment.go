package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle of a single payment attempt. Every value
// other than pending is terminal.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusExpired PaymentStatus = "expired"
)

// IsTerminal reports whether the payment can no longer change status.
func (s PaymentStatus) IsTerminal() bool {
	return s != PaymentStatusPending
}

// Payment is one QR-code payment attempt against an order. Amount is kept
// independent of Order.TotalAmount so partial or adjusted payments stay
// representable.
type Payment struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	OrderID          uint            `gorm:"not null;index" json:"order_id"`
	Order            *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	PaymentGateway   string          `gorm:"not null" json:"payment_gateway"`
	QRCodeData       string          `gorm:"not null" json:"qr_code_data"`
	QRCodeURL        *string         `json:"qr_code_url"`
	Amount           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status           PaymentStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	GatewayReference *string         `json:"gateway_reference"`
	ExpiresAt        *time.Time      `json:"expires_at"`
	PaidAt           *time.Time      `json:"paid_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
