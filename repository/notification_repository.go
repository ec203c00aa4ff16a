package repository

import (
	"gorm.io/gorm"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint) ([]entity.Notification, error) {
	var ns []entity.Notification
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&ns).Error
	return ns, err
}

func (r *NotificationRepository) Get(userID, id uint) (*entity.Notification, error) {
	var n entity.Notification
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead is idempotent; re-reading a read notification is a no-op.
func (r *NotificationRepository) MarkRead(userID, id uint) error {
	return r.DB.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", entity.NotificationRead).Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.DB.Model(&entity.Notification{}).
		Where("user_id = ? AND status = ?", userID, entity.NotificationUnread).
		Update("status", entity.NotificationRead).Error
}

func (r *NotificationRepository) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Notification{}).
		Where("user_id = ? AND status = ?", userID, entity.NotificationUnread).
		Count(&count).Error
	return count, err
}
