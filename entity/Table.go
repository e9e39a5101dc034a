package entity

import (
	"fmt"

	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	RestaurantID uint       `gorm:"uniqueIndex:idx_restaurant_table_number;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableNumber string `gorm:"uniqueIndex:idx_restaurant_table_number;not null" json:"tableNumber"`
	Capacity    int    `gorm:"default:4" json:"capacity"`
	Location    string `gorm:"default:indoor" json:"location"`
	Status      string `gorm:"default:available" json:"status"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	Notes       string `json:"notes"`

	// encoded customer entry URL, refreshed whenever the table is saved
	QRCode string `json:"qrCode"`

	CurrentOrderID *uint  `json:"currentOrderId"`
	CurrentOrder   *Order `gorm:"foreignKey:CurrentOrderID" json:"-"`
}

// QRData builds the URL encoded into the table's QR code.
func (t *Table) QRData(baseURL, restaurantSlug string) string {
	return fmt.Sprintf("%s/r/%s/table/%s", baseURL, restaurantSlug, t.TableNumber)
}

func (t *Table) IsAvailable() bool {
	return t.Status == TableAvailable && t.IsActive
}
