package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// Available has no column default so that creating an item with
	// Available=false actually persists false.
	Available   bool            `gorm:"not null" json:"available"`
	Description string          `json:"description"`
	PhotoURL    string          `json:"photoUrl"`

	// StockLimit is the remaining sellable units; nil means unlimited.
	StockLimit *int `json:"stockLimit"`

	CategoryID *uint         `json:"categoryId"`
	Category   *MenuCategory `json:"-"`

	InventoryLogs []InventoryLog `json:"-"`
}
