package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Items keep a nullable reference; deleting a category does not
	// cascade to its items.
	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
