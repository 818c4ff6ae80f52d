package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/franciscosanchezn/gin-resto-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CartController handles HTTP requests for session-scoped carts
type CartController struct {
	service services.CartService
}

// NewCartController creates a new instance of CartController
func NewCartController(service services.CartService) *CartController {
	return &CartController{service: service}
}

// GetCart godoc
// @Summary Get a session's cart
// @Description Get all cart items for a session, joined with live menu item details
// @Tags cart
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} models.CartItem
// @Failure 500 {object} models.APIError
// @Router /api/v1/cart/{sessionID} [get]
func (cc *CartController) GetCart(c *gin.Context) {
	items, err := cc.service.GetCart(c.Param("sessionID"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to retrieve cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToCart godoc
// @Summary Add a menu item to a cart
// @Description Add a menu item to the session's cart; adding the same item again increments its quantity instead of duplicating the row
// @Tags cart
// @Accept json
// @Produce json
// @Param item body services.AddToCartInput true "Item to add"
// @Success 201 {object} models.CartItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/cart/items [post]
func (cc *CartController) AddToCart(c *gin.Context) {
	var input services.AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}

	item, err := cc.service.AddToCart(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, models.ErrMenuItemNotFound, "Menu item not found")
		case errors.Is(err, services.ErrUnavailable):
			respondWithError(c, http.StatusConflict, models.ErrMenuItemUnavailable, "Menu item is not available")
		default:
			respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to add item to cart")
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateCartItem godoc
// @Summary Update a cart item's quantity
// @Description Overwrite the quantity of an existing cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param quantity body object{quantity=int} true "New quantity"
// @Success 200 {object} models.CartItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/cart/items/{id} [put]
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid cart item ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}

	item, err := cc.service.UpdateCartItem(uint(id), req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, models.ErrCartItemNotFound, "Cart item not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to update cart item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveFromCart godoc
// @Summary Remove a cart item
// @Description Delete a cart item; responds false (not an error) when the item did not exist
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {boolean} boolean
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/cart/items/{id} [delete]
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid cart item ID")
		return
	}

	removed, err := cc.service.RemoveFromCart(uint(id))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to remove cart item")
		return
	}
	c.JSON(http.StatusOK, removed)
}

// ClearCart godoc
// @Summary Clear a session's cart
// @Description Delete every cart item of a session; clearing an empty cart still succeeds
// @Tags cart
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {boolean} boolean
// @Failure 500 {object} models.APIError
// @Router /api/v1/cart/{sessionID} [delete]
func (cc *CartController) ClearCart(c *gin.Context) {
	cleared, err := cc.service.ClearCart(c.Param("sessionID"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, cleared)
}
