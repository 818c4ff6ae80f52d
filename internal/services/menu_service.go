package services

import (
	"errors"
	"strings"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateMenuItemInput carries the fields accepted when creating a menu item.
// IsAvailable defaults to true when omitted.
type CreateMenuItemInput struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  uint            `json:"category_id" binding:"required"`
	ImageURL    *string         `json:"image_url"`
	IsAvailable *bool           `json:"is_available"`
}

// MenuItemUpdate is a partial update: only fields present in the request
// are applied, and an explicit null clears nullable columns. See
// models.Optional for the absent/null distinction.
type MenuItemUpdate struct {
	Name        models.Optional[string]          `json:"name"`
	Description models.Optional[string]          `json:"description"`
	Price       models.Optional[decimal.Decimal] `json:"price"`
	CategoryID  models.Optional[uint]            `json:"category_id"`
	ImageURL    models.Optional[string]          `json:"image_url"`
	IsAvailable models.Optional[bool]            `json:"is_available"`
}

// MenuItemFilter predicates compose conjunctively. A nil filter (or a nil
// AvailableOnly) restricts results to available items.
type MenuItemFilter struct {
	CategoryID    *uint
	Search        string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	AvailableOnly *bool
}

// MenuService provides methods to manage and search menu items
type MenuService interface {
	// CreateMenuItem inserts a new menu item under an existing category
	CreateMenuItem(input CreateMenuItemInput) (models.MenuItem, error)
	// UpdateMenuItem applies a partial update to an existing menu item
	UpdateMenuItem(id uint, update MenuItemUpdate) (models.MenuItem, error)
	// GetMenuItems retrieves menu items matching the filter, each joined
	// with its owning category
	GetMenuItems(filter *MenuItemFilter) ([]models.MenuItem, error)
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) CreateMenuItem(input CreateMenuItemInput) (models.MenuItem, error) {
	if err := s.checkCategoryExists(input.CategoryID); err != nil {
		return models.MenuItem{}, err
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	item := models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		ImageURL:    input.ImageURL,
		IsAvailable: available,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) UpdateMenuItem(id uint, update MenuItemUpdate) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, err
	}

	updates, err := s.buildUpdates(update)
	if err != nil {
		return models.MenuItem{}, err
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return models.MenuItem{}, err
	}

	var updated models.MenuItem
	if err := s.db.First(&updated, id).Error; err != nil {
		return models.MenuItem{}, err
	}
	return updated, nil
}

// buildUpdates translates the optional-field record into a column map.
// Null on a non-nullable column is a constraint violation, not a clear.
func (s *menuService) buildUpdates(update MenuItemUpdate) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if update.Name.Present {
		if !update.Name.Valid {
			return nil, ErrConstraintViolation
		}
		updates["name"] = update.Name.Value
	}
	if update.Description.Present {
		if update.Description.Valid {
			updates["description"] = update.Description.Value
		} else {
			updates["description"] = nil
		}
	}
	if update.Price.Present {
		if !update.Price.Valid {
			return nil, ErrConstraintViolation
		}
		updates["price"] = update.Price.Value
	}
	if update.CategoryID.Present {
		if !update.CategoryID.Valid {
			return nil, ErrConstraintViolation
		}
		if err := s.checkCategoryExists(update.CategoryID.Value); err != nil {
			return nil, err
		}
		updates["category_id"] = update.CategoryID.Value
	}
	if update.ImageURL.Present {
		if update.ImageURL.Valid {
			updates["image_url"] = update.ImageURL.Value
		} else {
			updates["image_url"] = nil
		}
	}
	if update.IsAvailable.Present {
		if !update.IsAvailable.Valid {
			return nil, ErrConstraintViolation
		}
		updates["is_available"] = update.IsAvailable.Value
	}

	return updates, nil
}

func (s *menuService) GetMenuItems(filter *MenuItemFilter) ([]models.MenuItem, error) {
	query := s.db.Preload("Category")

	availableOnly := true
	if filter != nil && filter.AvailableOnly != nil {
		availableOnly = *filter.AvailableOnly
	}
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	if filter != nil {
		if filter.CategoryID != nil {
			query = query.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
		}
		if filter.MinPrice != nil {
			query = query.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			query = query.Where("price <= ?", *filter.MaxPrice)
		}
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) checkCategoryExists(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConstraintViolation
		}
		return err
	}
	return nil
}
