package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
