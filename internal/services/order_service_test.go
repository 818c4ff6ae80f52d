package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fillCart puts a known cart in place: 2x Pad Thai (10.50) and 1x green
// curry at 15.00, for a 36.00 total.
func fillCart(t *testing.T, db *gorm.DB, sessionID string) (models.MenuItem, models.MenuItem) {
	category := createTestCategory(t, db, "Mains")
	padThai := createTestMenuItem(t, db, category.ID, "Pad Thai", "", "10.50", true)
	curry := createTestMenuItem(t, db, category.ID, "Green Curry", "", "15.00", true)

	carts := NewCartService(db)
	_, err := carts.AddToCart(AddToCartInput{SessionID: sessionID, MenuItemID: padThai.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = carts.AddToCart(AddToCartInput{SessionID: sessionID, MenuItemID: curry.ID, Quantity: 1})
	require.NoError(t, err)

	return padThai, curry
}

func TestCreateOrderSnapshotsCart(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)
	padThai, curry := fillCart(t, db, "session-1")

	order, err := service.CreateOrder(CreateOrderInput{
		SessionID:    "session-1",
		CustomerName: "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", order.CustomerName)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.OrderPaymentPending, order.PaymentStatus)
	assert.Equal(t, "36.00", order.TotalAmount.StringFixed(2))

	require.Len(t, order.Items, 2)
	byItem := map[uint]models.OrderItem{}
	for _, line := range order.Items {
		byItem[line.MenuItemID] = line
	}
	assert.Equal(t, 2, byItem[padThai.ID].Quantity)
	assert.Equal(t, "10.50", byItem[padThai.ID].PriceAtTime.StringFixed(2))
	assert.Equal(t, 1, byItem[curry.ID].Quantity)
	assert.Equal(t, "15.00", byItem[curry.ID].PriceAtTime.StringFixed(2))
}

func TestCreateOrderEmptiesTheCart(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)
	fillCart(t, db, "session-1")

	_, err := service.CreateOrder(CreateOrderInput{SessionID: "session-1", CustomerName: "Ana"})
	require.NoError(t, err)

	items, err := NewCartService(db).GetCart("session-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.CreateOrder(CreateOrderInput{SessionID: "nobody", CustomerName: "Ana"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	// No half-created order may be left behind
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOrderKeepsPriceAfterMenuChanges(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)
	padThai, _ := fillCart(t, db, "session-1")

	order, err := service.CreateOrder(CreateOrderInput{SessionID: "session-1", CustomerName: "Ana"})
	require.NoError(t, err)

	// Reprice the menu item after checkout
	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", padThai.ID).
		Update("price", "99.00").Error)

	reloaded, err := service.GetOrder(order.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "36.00", reloaded.TotalAmount.StringFixed(2))
	for _, line := range reloaded.Items {
		if line.MenuItemID == padThai.ID {
			assert.Equal(t, "10.50", line.PriceAtTime.StringFixed(2))
		}
	}
}

func TestGetOrderMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	order, err := service.GetOrder(9999)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetOrdersAscendingByCreation(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	fillCart(t, db, "session-1")
	first, err := service.CreateOrder(CreateOrderInput{SessionID: "session-1", CustomerName: "Ana"})
	require.NoError(t, err)

	carts := NewCartService(db)
	var padThai models.MenuItem
	require.NoError(t, db.Where("name = ?", "Pad Thai").First(&padThai).Error)
	_, err = carts.AddToCart(AddToCartInput{SessionID: "session-2", MenuItemID: padThai.ID, Quantity: 1})
	require.NoError(t, err)
	second, err := service.CreateOrder(CreateOrderInput{SessionID: "session-2", CustomerName: "Ben"})
	require.NoError(t, err)

	orders, err := service.GetOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	require.Len(t, orders[0].Items, 2)
	require.NotNil(t, orders[0].Items[0].MenuItem)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)
	fillCart(t, db, "session-1")

	order, err := service.CreateOrder(CreateOrderInput{SessionID: "session-1", CustomerName: "Ana"})
	require.NoError(t, err)

	updated, err := service.UpdateOrderStatus(order.ID, models.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusPreparing, stored.Status)
}

func TestUpdateOrderStatusUnknownTarget(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.UpdateOrderStatus(9999, models.OrderStatusReady)
	assert.ErrorIs(t, err, ErrNotFound)
}
