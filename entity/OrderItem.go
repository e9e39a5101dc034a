package entity

import (
	"gorm.io/gorm"
)

// OrderItem captures the menu item's name and price at order time so the
// line survives later menu edits.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Price    int64  `gorm:"not null" json:"price"` // cents, captured
	Quantity int    `gorm:"not null;default:1" json:"quantity"`
	Notes    string `json:"notes"`
	Subtotal int64  `json:"subtotal"`
}
