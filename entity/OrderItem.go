package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"`

	// PriceAtOrder freezes the unit price at order time so historical
	// orders are immune to later menu price changes.
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"priceAtOrder"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
