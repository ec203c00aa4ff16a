package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status     OrderStatus `gorm:"not null;default:pending" json:"status"`
	PickupType PickupType  `gorm:"not null" json:"pickupType"`
	PickupTime *time.Time  `json:"pickupTime,omitempty"`

	// TotalPrice is computed server-side at creation from current menu
	// prices, never taken from client input.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`

	PaymentStatus    PaymentState `gorm:"not null;default:pending" json:"paymentStatus"`
	PaymentConfirmed bool         `gorm:"not null;default:false" json:"paymentConfirmed"`

	// UserID is nil for walk-in orders recorded by staff at the register.
	UserID *uint `json:"userId"`
	User   *User `json:"-"`

	CustomerName string `json:"customerName,omitempty"`
	CustomerType string `json:"customerType,omitempty"`

	OrderItems    []OrderItem    `json:"items,omitempty"`
	Payments      []Payment      `json:"-"`
	Notifications []Notification `json:"-"`
}
