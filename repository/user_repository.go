package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) ListPendingStaff() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ? AND approved = ?", entity.RoleStaff, false).
		Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByResetToken(token string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetResetToken(userID uint, token string, expiry time.Time) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{"reset_token": token, "reset_expiry": expiry}).Error
}

// StaffStats counts staff accounts by approval state.
type StaffStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}

func (r *UserRepository) CountStaff() (*StaffStats, error) {
	var out StaffStats
	base := r.DB.Model(&entity.User{}).Where("role = ?", entity.RoleStaff)
	if err := base.Session(&gorm.Session{}).Count(&out.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("approved = ?", true).Count(&out.Approved).Error; err != nil {
		return nil, err
	}
	out.Pending = out.Total - out.Approved
	return &out, nil
}
