package entity

import (
	"gorm.io/gorm"
)

type ChangeType string

const (
	ChangeRestock ChangeType = "restock"
	ChangeDeduct  ChangeType = "deduct"
)

// InventoryLog is an append-only audit row for every stock change.
// Order-driven deductions carry no staff actor.
type InventoryLog struct {
	gorm.Model
	ChangeType ChangeType `gorm:"not null" json:"changeType"`
	Quantity   int        `gorm:"not null" json:"quantity"`
	Note       string     `json:"note"`

	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	StaffID *uint `json:"staffId,omitempty"`
	Staff   *User `gorm:"foreignKey:StaffID" json:"-"`
}
