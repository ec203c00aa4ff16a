package configs

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

// SeedAdmin creates the first admin account from env on a fresh
// database. Skipped silently when the account already exists or the
// env is unset.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:         cfg.AdminEmail,
		Password:      string(hash),
		FirstName:     "Admin",
		LastName:      "Seed",
		Role:          entity.RoleAdmin,
		Approved:      true,
		EmailVerified: true,
	}
	return db.Create(&admin).Error
}
