package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"gorm.io/gorm"
)

// Migrate runs the schema auto migration for every persisted entity.
// The cart table carries a composite unique index on (session_id, menu_item_id)
// which the upsert in the cart service relies on, so migration must run
// before the services are wired up.
func Migrate(db *gorm.DB) error {
	log.Info("Running schema migration")

	err := db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	log.Info("Schema migration completed")
	return nil
}
