package gateway

import (
	"fmt"
	"math/rand"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/google/uuid"
)

// Oracle answers whether a pending payment has completed on the gateway
// side. It stands in for a real payment provider integration: swapping in
// an HTTP-backed implementation must not touch the state-transition logic
// in the payment service.
type Oracle interface {
	// Poll reports whether the payment is now settled. A non-empty
	// reference identifies the gateway-side transaction.
	Poll(payment models.Payment) (paid bool, reference string, err error)
}

// ManualOracle never reports a spontaneous settlement: payment status only
// changes through explicit status updates. This is the production default
// until a real gateway client exists.
type ManualOracle struct{}

func (ManualOracle) Poll(models.Payment) (bool, string, error) {
	return false, "", nil
}

// SimulatedOracle settles pending payments at a configurable rate. Useful
// for demos and local development only.
type SimulatedOracle struct {
	// PaidProbability is the chance in [0,1] that a poll reports paid.
	PaidProbability float64
}

func (o SimulatedOracle) Poll(payment models.Payment) (bool, string, error) {
	if rand.Float64() >= o.PaidProbability {
		return false, "", nil
	}
	reference := fmt.Sprintf("sim-%s-%s", payment.PaymentGateway, uuid.NewString())
	return true, reference, nil
}
