package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

// Connect opens the database named by the config. The handle is owned
// by the caller and passed down explicitly; there is no package-level
// connection state.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.InventoryLog{},
		&entity.Payment{},
		&entity.Notification{},
		&entity.Feedback{},
	)
}
