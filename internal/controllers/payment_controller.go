package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/franciscosanchezn/gin-resto-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PaymentController handles HTTP requests for QR payments
type PaymentController struct {
	service services.PaymentService
}

// NewPaymentController creates a new instance of PaymentController
func NewPaymentController(service services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

// CreatePayment godoc
// @Summary Create a QR payment for an order
// @Description Generate a pending QR payment with a 15 minute expiry window
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body services.CreatePaymentInput true "Payment request"
// @Success 201 {object} models.Payment
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/payments [post]
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var input services.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}
	if !input.Amount.IsPositive() {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Amount must be greater than zero")
		return
	}

	payment, err := pc.service.CreatePayment(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, models.ErrOrderNotFound, "Order not found")
		case errors.Is(err, services.ErrOrderClosed):
			respondWithError(c, http.StatusConflict, models.ErrOrderClosed, "Order is completed or cancelled")
		case errors.Is(err, services.ErrAlreadyPaid):
			respondWithError(c, http.StatusConflict, models.ErrOrderAlreadyPaid, "Order is already paid")
		default:
			respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to create payment")
		}
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetPayment godoc
// @Summary Get a payment
// @Description Get a payment with its order
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/payments/{id} [get]
func (pc *PaymentController) GetPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid payment ID")
		return
	}

	payment, err := pc.service.GetPayment(uint(id))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to retrieve payment")
		return
	}
	if payment == nil {
		respondWithError(c, http.StatusNotFound, models.ErrPaymentNotFound, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CheckPaymentStatus godoc
// @Summary Check a payment's status
// @Description Refresh the payment against its expiry window and the gateway, then return it
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/payments/{id}/status [get]
func (pc *PaymentController) CheckPaymentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid payment ID")
		return
	}

	payment, err := pc.service.CheckPaymentStatus(uint(id))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to check payment status")
		return
	}
	if payment == nil {
		respondWithError(c, http.StatusNotFound, models.ErrPaymentNotFound, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// UpdatePaymentStatus godoc
// @Summary Update a payment's status
// @Description Set the payment status from a gateway callback; marking paid also marks the order paid
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param status body services.PaymentStatusUpdate true "Target status"
// @Success 200 {object} models.Payment
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/payments/{id}/status [patch]
func (pc *PaymentController) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid payment ID")
		return
	}

	var update services.PaymentStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}

	payment, err := pc.service.UpdatePaymentStatus(uint(id), update)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, models.ErrPaymentNotFound, "Payment not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to update payment status")
		return
	}
	c.JSON(http.StatusOK, payment)
}
