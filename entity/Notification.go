package entity

import (
	"gorm.io/gorm"
)

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

type Notification struct {
	gorm.Model
	Message string             `gorm:"not null" json:"message"`
	Status  NotificationStatus `gorm:"not null;default:unread" json:"status"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`
}
