package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/franciscosanchezn/gin-resto-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CategoryController handles HTTP requests for menu categories
type CategoryController struct {
	service services.CategoryService
}

// NewCategoryController creates a new instance of CategoryController
func NewCategoryController(service services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// GetCategories godoc
// @Summary List categories
// @Description Get all menu categories
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} models.APIError
// @Router /api/v1/categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.service.GetCategories()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Description Create a new menu category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body services.CreateCategoryInput true "Category details"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var input services.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, models.ErrValidationFailed, err.Error())
		return
	}

	category, err := cc.service.CreateCategory(input)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, models.ErrInternalServer, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}
