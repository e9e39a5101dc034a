package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash, empty for customers
	Name     string `gorm:"not null" json:"name"`
	Email    string `json:"email"`
	Phone    string `gorm:"index" json:"phone"`

	Role string `gorm:"not null;default:customer;index" json:"role"`

	// nil only for superadmin
	RestaurantID *uint       `gorm:"index" json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	IsActive  bool       `gorm:"default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}
