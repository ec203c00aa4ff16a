package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is a cash-register ledger entry, not a gateway transaction.
// Change = AmountReceived - AmountDue and may be negative.
type Payment struct {
	gorm.Model
	AmountDue      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amountDue"`
	AmountReceived decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amountReceived"`
	Change         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"change"`
	Method         string          `gorm:"not null;default:cash" json:"method"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`

	StaffID uint `gorm:"not null" json:"staffId"`
	Staff   User `gorm:"foreignKey:StaffID" json:"-"`
}
