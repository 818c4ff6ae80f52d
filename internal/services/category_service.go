package services

import (
	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"gorm.io/gorm"
)

// CreateCategoryInput carries the fields accepted when creating a category
type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// CategoryService provides methods to manage menu categories
type CategoryService interface {
	// CreateCategory inserts a new category; names are not unique
	CreateCategory(input CreateCategoryInput) (models.Category, error)
	// GetCategories retrieves all categories
	GetCategories() ([]models.Category, error)
}

type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *gorm.DB) CategoryService {
	return &categoryService{db: db}
}

func (s *categoryService) CreateCategory(input CreateCategoryInput) (models.Category, error) {
	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
