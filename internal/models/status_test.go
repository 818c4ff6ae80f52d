package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())

	for _, status := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
	} {
		assert.False(t, status.IsTerminal(), "status %s", status)
	}
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())

	for _, status := range []PaymentStatus{
		PaymentStatusPaid, PaymentStatusFailed, PaymentStatusExpired,
	} {
		assert.True(t, status.IsTerminal(), "status %s", status)
	}
}
