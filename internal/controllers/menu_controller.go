package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/franciscosanchezn/gin-resto-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MenuController handles HTTP requests for menu items
type MenuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// GetMenuItems godoc
// @Summary Search menu items
// @Description Get menu items with optional filtering; filters compose conjunctively
// @Tags menu
// @Accept json
// @Produce json
// @Param category_id query int false "Filter by category ID"
// @Param search query string false "Case-insensitive substring match on name or description"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param available_only query bool false "Restrict to available items (default true)"
// @Success 200 {array} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/menu-items [get]
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	filter, ok := mc.parseFilter(c)
	if !ok {
		return
	}

	items, err := mc.service.GetMenuItems(filter)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to retrieve menu items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// parseFilter reads the query parameters into a service filter. It
// responds with 400 and returns ok=false on any malformed value.
func (mc *MenuController) parseFilter(c *gin.Context) (*services.MenuItemFilter, bool) {
	filter := &services.MenuItemFilter{Search: c.Query("search")}

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Invalid category_id")
			return nil, false
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if raw := c.Query("min_price"); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Invalid min_price")
			return nil, false
		}
		filter.MinPrice = &minPrice
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Invalid max_price")
			return nil, false
		}
		filter.MaxPrice = &maxPrice
	}
	if raw := c.Query("available_only"); raw != "" {
		availableOnly, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Invalid available_only")
			return nil, false
		}
		filter.AvailableOnly = &availableOnly
	}

	return filter, true
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Description Create a new menu item under an existing category
// @Tags menu
// @Accept json
// @Produce json
// @Param menu_item body services.CreateMenuItemInput true "Menu item details"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/menu-items [post]
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var input services.CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}
	if !input.Price.IsPositive() {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Price must be greater than zero")
		return
	}

	item, err := mc.service.CreateMenuItem(input)
	if err != nil {
		if errors.Is(err, services.ErrConstraintViolation) {
			respondWithError(c, http.StatusBadRequest, models.ErrCategoryNotFound, "Category does not exist")
			return
		}
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to create menu item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Apply a partial update: absent fields stay untouched, explicit nulls clear nullable fields
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param menu_item body services.MenuItemUpdate true "Fields to update"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/menu-items/{id} [patch]
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrBadRequest, "Invalid menu item ID")
		return
	}

	var update services.MenuItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}
	if update.Price.Present && update.Price.Valid && !update.Price.Value.IsPositive() {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Price must be greater than zero")
		return
	}

	item, err := mc.service.UpdateMenuItem(uint(id), update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondWithError(c, http.StatusNotFound, models.ErrMenuItemNotFound, "Menu item not found")
		case errors.Is(err, services.ErrConstraintViolation):
			respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, "Update violates a column constraint")
		default:
			respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to update menu item")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}
