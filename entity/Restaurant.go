package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Subdomain string `gorm:"uniqueIndex;not null" json:"subdomain"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`

	CreatedByID uint  `json:"createdById"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"-"`

	// per-tenant settings
	Currency    string `gorm:"default:$" json:"currency"`
	Timezone    string `gorm:"default:UTC" json:"timezone"`
	OrderPrefix string `gorm:"default:ORD" json:"orderPrefix"`

	Tables    []Table    `json:"-"`
	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
