package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-resto-api/internal/gateway"
	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// paymentExpiry is how long a QR code stays scannable after creation.
const paymentExpiry = 15 * time.Minute

// CreatePaymentInput carries the fields accepted when opening a payment
// attempt against an order
type CreatePaymentInput struct {
	OrderID        uint            `json:"order_id" binding:"required"`
	PaymentGateway string          `json:"payment_gateway" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
}

// PaymentStatusUpdate carries an explicit status change. GatewayReference
// and PaidAt are applied only when provided.
type PaymentStatusUpdate struct {
	Status           models.PaymentStatus `json:"status" binding:"required,oneof=pending paid failed expired"`
	GatewayReference *string              `json:"gateway_reference"`
	PaidAt           *time.Time           `json:"paid_at"`
}

// PaymentService manages QR-code payment attempts and their lifecycle
type PaymentService interface {
	// CreatePayment opens a pending payment against an order that is
	// still open and unpaid, generating its QR token and expiry
	CreatePayment(input CreatePaymentInput) (models.Payment, error)
	// GetPayment retrieves a payment with its order; nil when not found
	GetPayment(id uint) (*models.Payment, error)
	// CheckPaymentStatus lazily advances a pending payment: past-expiry
	// payments become expired, otherwise the gateway oracle may report
	// the payment as settled. Terminal payments are returned unchanged;
	// nil when not found.
	CheckPaymentStatus(id uint) (*models.Payment, error)
	// UpdatePaymentStatus sets the payment status explicitly. Marking a
	// payment paid also marks the owning order as paid within the same
	// transaction.
	UpdatePaymentStatus(id uint, update PaymentStatusUpdate) (models.Payment, error)
}

type paymentService struct {
	db     *gorm.DB
	oracle gateway.Oracle
}

// NewPaymentService creates a new instance of PaymentService. The oracle
// decides whether pending payments settle during status checks.
func NewPaymentService(db *gorm.DB, oracle gateway.Oracle) PaymentService {
	return &paymentService{db: db, oracle: oracle}
}

func (s *paymentService) CreatePayment(input CreatePaymentInput) (models.Payment, error) {
	var order models.Order
	if err := s.db.First(&order, input.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, ErrNotFound
		}
		return models.Payment{}, err
	}
	if order.Status.IsTerminal() {
		return models.Payment{}, ErrOrderClosed
	}
	if order.PaymentStatus == models.OrderPaymentPaid {
		return models.Payment{}, ErrAlreadyPaid
	}

	now := time.Now()
	expiresAt := now.Add(paymentExpiry)
	payment := models.Payment{
		OrderID:        order.ID,
		PaymentGateway: input.PaymentGateway,
		QRCodeData:     buildQRToken(input.PaymentGateway, order.ID, now),
		Amount:         input.Amount,
		Status:         models.PaymentStatusPending,
		ExpiresAt:      &expiresAt,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return models.Payment{}, err
	}

	log.WithFields(log.Fields{
		"payment_id": payment.ID,
		"order_id":   order.ID,
		"gateway":    payment.PaymentGateway,
		"amount":     payment.Amount,
	}).Info("Payment created")
	return payment, nil
}

// buildQRToken encodes gateway, order and creation instant into an opaque
// token. The nanosecond timestamp plus a random fragment keeps two
// payments for the same order distinguishable even within one tick.
func buildQRToken(paymentGateway string, orderID uint, createdAt time.Time) string {
	return fmt.Sprintf("%s:%d:%d:%s", paymentGateway, orderID, createdAt.UnixNano(), uuid.NewString())
}

func (s *paymentService) GetPayment(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Preload("Order").First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (s *paymentService) CheckPaymentStatus(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if payment.Status.IsTerminal() {
		return &payment, nil
	}

	now := time.Now()
	if payment.ExpiresAt != nil && payment.ExpiresAt.Before(now) {
		err := s.db.Model(&payment).Update("status", models.PaymentStatusExpired).Error
		if err != nil {
			return nil, err
		}
		log.WithField("payment_id", payment.ID).Info("Payment expired")
		return s.reload(id)
	}

	paid, reference, err := s.oracle.Poll(payment)
	if err != nil {
		return nil, err
	}
	if !paid {
		return &payment, nil
	}

	if err := s.markPaid(payment, reference, now); err != nil {
		return nil, err
	}
	return s.reload(id)
}

func (s *paymentService) UpdatePaymentStatus(id uint, update PaymentStatusUpdate) (models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, ErrNotFound
		}
		return models.Payment{}, err
	}

	updates := map[string]interface{}{"status": update.Status}
	if update.GatewayReference != nil {
		updates["gateway_reference"] = *update.GatewayReference
	}
	if update.PaidAt != nil {
		updates["paid_at"] = *update.PaidAt
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}
		if update.Status == models.PaymentStatusPaid {
			return markOrderPaid(tx, payment.OrderID)
		}
		return nil
	})
	if err != nil {
		return models.Payment{}, err
	}

	updated, err := s.reload(id)
	if err != nil {
		return models.Payment{}, err
	}
	return *updated, nil
}

// markPaid settles a payment reported by the oracle: it stamps paid_at and
// propagates the paid state to the owning order in one transaction.
func (s *paymentService) markPaid(payment models.Payment, reference string, paidAt time.Time) error {
	updates := map[string]interface{}{
		"status":  models.PaymentStatusPaid,
		"paid_at": paidAt,
	}
	if reference != "" {
		updates["gateway_reference"] = reference
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}
		return markOrderPaid(tx, payment.OrderID)
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
	}).Info("Payment marked paid")
	return nil
}

// markOrderPaid keeps the cross-entity invariant: an order shows paid as
// soon as one of its payments is paid.
func markOrderPaid(tx *gorm.DB, orderID uint) error {
	return tx.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", models.OrderPaymentPaid).Error
}

func (s *paymentService) reload(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
