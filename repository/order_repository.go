package repository

import (
	"time"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return wrap(tx.Create(o).Error)
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	return wrap(tx.Save(o).Error)
}

func (r *OrderRepository) AppendStatusEvent(tx *gorm.DB, ev *entity.OrderStatusEvent) error {
	return wrap(tx.Create(ev).Error)
}

// CountForDay counts the restaurant's orders created inside [from, to]. Feeds
// the daily order-number sequence.
func (r *OrderRepository) CountForDay(tx *gorm.DB, restaurantID uint, from, to time.Time) (int64, error) {
	var n int64
	err := tx.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, from, to).
		Count(&n).Error
	return n, wrap(err)
}

func (r *OrderRepository) GetForRestaurant(restaurantID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		Preload("Items").First(&o).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &o, nil
}

// GetDetail also loads the append-only status history, oldest first.
func (r *OrderRepository) GetDetail(restaurantID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_events.timestamp, order_status_events.id")
		}).
		First(&o).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &o, nil
}

// OrderFilter narrows staff/admin order listings. Since/Until bound
// created_at inclusively; a single-day filter sets both.
type OrderFilter struct {
	Status  string
	TableID uint
	Since   *time.Time
	Until   *time.Time
}

func (r *OrderRepository) ListForRestaurant(restaurantID uint, f OrderFilter) ([]entity.Order, error) {
	db := r.DB.Where("restaurant_id = ?", restaurantID)
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.TableID != 0 {
		db = db.Where("table_id = ?", f.TableID)
	}
	if f.Since != nil {
		db = db.Where("created_at >= ?", *f.Since)
	}
	if f.Until != nil {
		db = db.Where("created_at <= ?", *f.Until)
	}
	var out []entity.Order
	err := db.Preload("Items").Order("created_at DESC").Find(&out).Error
	return out, wrap(err)
}

// ActiveForTable finds the table's most recent non-terminal order.
func (r *OrderRepository) ActiveForTable(restaurantID, tableID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("restaurant_id = ? AND table_id = ? AND status IN ?",
		restaurantID, tableID, entity.ActiveOrderStatuses()).
		Preload("Items").
		Order("created_at DESC").First(&o).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &o, nil
}

func (r *OrderRepository) ListForCustomer(restaurantID, customerID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []entity.Order
	err := r.DB.Where("restaurant_id = ? AND customer_id = ?", restaurantID, customerID).
		Preload("Items").
		Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, wrap(err)
}

func (r *OrderRepository) CountByStatusSince(restaurantID uint, status string, since time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status = ? AND created_at >= ?", restaurantID, status, since).
		Count(&n).Error
	return n, wrap(err)
}

func (r *OrderRepository) CountByStatus(restaurantID uint, status string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, status).
		Count(&n).Error
	return n, wrap(err)
}
