package entity

import (
	"time"

	"gorm.io/gorm"
)

// TaxRatePercent is a flat platform-wide tax rate. Restaurant settings carry
// currency/timezone but no per-tenant tax field yet.
const TaxRatePercent = 10

type Order struct {
	gorm.Model
	RestaurantID uint       `gorm:"uniqueIndex:idx_restaurant_order_number;index:idx_restaurant_status;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID uint  `gorm:"index;not null" json:"tableId"`
	Table   Table `gorm:"foreignKey:TableID" json:"-"`

	CustomerID    *uint  `json:"customerId"`
	Customer      *User  `gorm:"foreignKey:CustomerID" json:"-"`
	CustomerPhone string `gorm:"index;not null" json:"customerPhone"`

	OrderNumber string `gorm:"uniqueIndex:idx_restaurant_order_number;not null" json:"orderNumber"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	Subtotal int64 `json:"subtotal"` // cents
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`

	Status        string `gorm:"default:pending;index:idx_restaurant_status" json:"status"`
	PaymentStatus string `gorm:"default:pending" json:"paymentStatus"`
	PaymentMethod string `gorm:"default:cash" json:"paymentMethod"`
	Notes         string `json:"notes"`

	StatusHistory []OrderStatusEvent `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"statusHistory"`

	ServedByID *uint `json:"servedById"`
	ServedBy   *User `gorm:"foreignKey:ServedByID" json:"-"`

	PlacedAt    time.Time  `json:"placedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Recalculate recomputes line subtotals and the order's subtotal/tax/total.
// Must be called before every persist that touches items or status.
func (o *Order) Recalculate() {
	var subtotal int64
	for i := range o.Items {
		o.Items[i].Subtotal = o.Items[i].Price * int64(o.Items[i].Quantity)
		subtotal += o.Items[i].Subtotal
	}
	o.Subtotal = subtotal
	o.Tax = subtotal * TaxRatePercent / 100
	o.Total = o.Subtotal + o.Tax
}

// PreparationMinutes reports wall time from placement to completion.
func (o *Order) PreparationMinutes() int {
	if o.CompletedAt == nil {
		return 0
	}
	return int(o.CompletedAt.Sub(o.PlacedAt).Round(time.Minute) / time.Minute)
}
