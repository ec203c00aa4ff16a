package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/mailer"
	"github.com/tomandjerry17/cafeteria-backend/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.InventoryLog{},
		&entity.Payment{},
		&entity.Notification{},
		&entity.Feedback{},
	))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	notify := NewNotificationService(notifRepo, userRepo, mailer.Noop{})
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db), notify)
}

func createUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
		Approved: role != entity.RoleStaff,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createItem(t *testing.T, db *gorm.DB, name, price string, stock *int) *entity.MenuItem {
	t.Helper()

	item := &entity.MenuItem{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Available:  true,
		StockLimit: stock,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func intPtr(v int) *int { return &v }
