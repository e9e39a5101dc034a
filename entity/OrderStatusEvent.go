package entity

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatusEvent is one entry in an order's append-only status history.
type OrderStatusEvent struct {
	gorm.Model
	OrderID uint `gorm:"index;not null" json:"orderId"`

	Status    string    `gorm:"not null" json:"status"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`

	UpdatedByID *uint `json:"updatedById"`
	UpdatedBy   *User `gorm:"foreignKey:UpdatedByID" json:"-"`
}
