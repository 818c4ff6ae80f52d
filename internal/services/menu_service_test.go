package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	require.NoError(t, err)

	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createTestMenuItem(t *testing.T, db *gorm.DB, categoryID uint, name, description, price string, available bool) models.MenuItem {
	item := models.MenuItem{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		CategoryID:  categoryID,
		IsAvailable: available,
	}
	if description != "" {
		item.Description = &description
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// unmarshalUpdate builds a MenuItemUpdate the same way gin binding does, so
// absent keys and explicit nulls behave exactly as they would in a request.
func unmarshalUpdate(t *testing.T, payload string) MenuItemUpdate {
	var update MenuItemUpdate
	require.NoError(t, json.Unmarshal([]byte(payload), &update))
	return update
}

func TestCreateMenuItemDefaultsToAvailable(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	category := createTestCategory(t, db, "Mains")

	item, err := service.CreateMenuItem(CreateMenuItemInput{
		Name:       "Pad Thai",
		Price:      decimal.RequireFromString("10.50"),
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.True(t, item.IsAvailable)

	var stored models.MenuItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.True(t, stored.IsAvailable)
	assert.Equal(t, "10.50", stored.Price.StringFixed(2))
}

func TestCreateMenuItemHonorsExplicitUnavailable(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	category := createTestCategory(t, db, "Mains")

	unavailable := false
	item, err := service.CreateMenuItem(CreateMenuItemInput{
		Name:        "Massaman Beef",
		Price:       decimal.RequireFromString("12.50"),
		CategoryID:  category.ID,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)
}

func TestCreateMenuItemRejectsUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)

	_, err := service.CreateMenuItem(CreateMenuItemInput{
		Name:       "Orphan Dish",
		Price:      decimal.RequireFromString("5.00"),
		CategoryID: 9999,
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestGetMenuItemsFilters(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)

	starters := createTestCategory(t, db, "Starters")
	mains := createTestCategory(t, db, "Mains")

	// One item matches "chicken" in the name, one in the description, and
	// one matching item is unavailable.
	createTestMenuItem(t, db, mains.ID, "Grilled Chicken Skewers", "Char-grilled with peanut sauce", "8.50", true)
	createTestMenuItem(t, db, starters.ID, "Caesar Salad", "Romaine with chicken strips and parmesan", "7.00", true)
	createTestMenuItem(t, db, mains.ID, "Chicken Burger", "", "9.50", false)
	createTestMenuItem(t, db, mains.ID, "Green Curry", "Coconut curry with basil", "11.00", true)

	itemNames := func(items []models.MenuItem) []string {
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Name)
		}
		return names
	}

	t.Run("nil filter returns only available items", func(t *testing.T) {
		items, err := service.GetMenuItems(nil)
		require.NoError(t, err)
		assert.Len(t, items, 3)
		assert.NotContains(t, itemNames(items), "Chicken Burger")
	})

	t.Run("search matches name and description case-insensitively", func(t *testing.T) {
		items, err := service.GetMenuItems(&MenuItemFilter{Search: "CHICKEN"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Grilled Chicken Skewers", "Caesar Salad"}, itemNames(items))
	})

	t.Run("available_only false includes unavailable items", func(t *testing.T) {
		availableOnly := false
		items, err := service.GetMenuItems(&MenuItemFilter{Search: "chicken", AvailableOnly: &availableOnly})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Grilled Chicken Skewers", "Caesar Salad", "Chicken Burger"}, itemNames(items))
	})

	t.Run("category filter scopes results", func(t *testing.T) {
		items, err := service.GetMenuItems(&MenuItemFilter{CategoryID: &mains.ID})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Grilled Chicken Skewers", "Green Curry"}, itemNames(items))
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		min := decimal.RequireFromString("8.50")
		max := decimal.RequireFromString("11.00")
		items, err := service.GetMenuItems(&MenuItemFilter{MinPrice: &min, MaxPrice: &max})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Grilled Chicken Skewers", "Green Curry"}, itemNames(items))
	})

	t.Run("filters compose conjunctively", func(t *testing.T) {
		max := decimal.RequireFromString("9.00")
		items, err := service.GetMenuItems(&MenuItemFilter{
			CategoryID: &mains.ID,
			Search:     "chicken",
			MaxPrice:   &max,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Grilled Chicken Skewers"}, itemNames(items))
	})

	t.Run("results preload the owning category", func(t *testing.T) {
		items, err := service.GetMenuItems(&MenuItemFilter{Search: "curry"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Category)
		assert.Equal(t, "Mains", items[0].Category.Name)
	})
}

func TestUpdateMenuItemAppliesOnlyPresentFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	category := createTestCategory(t, db, "Mains")
	item := createTestMenuItem(t, db, category.ID, "Red Curry", "Classic red curry", "11.00", true)

	updated, err := service.UpdateMenuItem(item.ID, unmarshalUpdate(t, `{"price": "12.00"}`))
	require.NoError(t, err)

	assert.Equal(t, "12.00", updated.Price.StringFixed(2))
	assert.Equal(t, "Red Curry", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Classic red curry", *updated.Description)
	assert.Equal(t, category.ID, updated.CategoryID)
	assert.True(t, updated.IsAvailable)
}

func TestUpdateMenuItemClearsNullableFieldsOnNull(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	category := createTestCategory(t, db, "Mains")
	item := createTestMenuItem(t, db, category.ID, "Red Curry", "Classic red curry", "11.00", true)
	imageURL := "https://example.com/red-curry.jpg"
	require.NoError(t, db.Model(&item).Update("image_url", imageURL).Error)

	updated, err := service.UpdateMenuItem(item.ID, unmarshalUpdate(t, `{"description": null, "image_url": null}`))
	require.NoError(t, err)

	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.ImageURL)
	assert.Equal(t, "Red Curry", updated.Name)
}

func TestUpdateMenuItemRejectsNullOnRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	category := createTestCategory(t, db, "Mains")
	item := createTestMenuItem(t, db, category.ID, "Red Curry", "", "11.00", true)

	for _, payload := range []string{
		`{"name": null}`,
		`{"price": null}`,
		`{"category_id": null}`,
		`{"is_available": null}`,
	} {
		_, err := service.UpdateMenuItem(item.ID, unmarshalUpdate(t, payload))
		assert.ErrorIs(t, err, ErrConstraintViolation, "payload %s", payload)
	}

	// The rejected updates must not have partially applied
	var stored models.MenuItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, "Red Curry", stored.Name)
	assert.Equal(t, "11.00", stored.Price.StringFixed(2))
}

func TestUpdateMenuItemMovesBetweenCategories(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	mains := createTestCategory(t, db, "Mains")
	specials := createTestCategory(t, db, "Specials")
	item := createTestMenuItem(t, db, mains.ID, "Duck Noodles", "", "13.00", true)

	updated, err := service.UpdateMenuItem(item.ID, unmarshalUpdate(t, fmt.Sprintf(`{"category_id": %d}`, specials.ID)))
	require.NoError(t, err)
	assert.Equal(t, specials.ID, updated.CategoryID)

	_, err = service.UpdateMenuItem(item.ID, unmarshalUpdate(t, `{"category_id": 9999}`))
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestUpdateMenuItemEmptyUpdateIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	category := createTestCategory(t, db, "Mains")
	item := createTestMenuItem(t, db, category.ID, "Red Curry", "", "11.00", true)

	updated, err := service.UpdateMenuItem(item.ID, unmarshalUpdate(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Red Curry", updated.Name)
	assert.Equal(t, "11.00", updated.Price.StringFixed(2))
}

func TestUpdateMenuItemUnknownTarget(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)

	_, err := service.UpdateMenuItem(9999, unmarshalUpdate(t, `{"name": "Ghost"}`))
	assert.ErrorIs(t, err, ErrNotFound)
}
