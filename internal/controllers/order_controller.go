package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/franciscosanchezn/gin-resto-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders
type OrderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// CreateOrder godoc
// @Summary Create an order from a cart
// @Description Snapshot the session's cart into an immutable order and clear the cart
// @Tags orders
// @Accept json
// @Produce json
// @Param order body services.CreateOrderInput true "Checkout details"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/orders [post]
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}

	order, err := oc.service.CreateOrder(input)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			respondWithError(c, http.StatusBadRequest, models.ErrCartEmpty, "Cart is empty for this session")
			return
		}
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders godoc
// @Summary List orders
// @Description Get all orders ascending by creation time, each with its items
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Router /api/v1/orders [get]
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.service.GetOrders()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to retrieve orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary Get an order
// @Description Get a single order with its items
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid order ID")
		return
	}

	order, err := oc.service.GetOrder(uint(id))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to retrieve order")
		return
	}
	if order == nil {
		respondWithError(c, http.StatusNotFound, models.ErrOrderNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Set the order status; transitions are not restricted
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body object{status=string} true "Target status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id}/status [patch]
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required,oneof=pending confirmed preparing ready completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}

	order, err := oc.service.UpdateOrderStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, models.ErrOrderNotFound, "Order not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, order)
}
