package repository

import (
	"github.com/Ayush29kumar/Restraunt-SaaS/entity"

	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.Table) error {
	return wrap(r.DB.Create(t).Error)
}

// GetForRestaurant scopes the lookup to one tenant.
func (r *TableRepository) GetForRestaurant(restaurantID, tableID uint) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("id = ? AND restaurant_id = ?", tableID, restaurantID).First(&t).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &t, nil
}

// GetActiveByNumber resolves the table a QR code points at.
func (r *TableRepository) GetActiveByNumber(restaurantID uint, tableNumber string) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("restaurant_id = ? AND table_number = ? AND is_active = ?",
		restaurantID, tableNumber, true).First(&t).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &t, nil
}

func (r *TableRepository) GetByNumber(restaurantID uint, tableNumber string) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("restaurant_id = ? AND table_number = ?", restaurantID, tableNumber).First(&t).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &t, nil
}

func (r *TableRepository) ListForRestaurant(restaurantID uint) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("table_number").Find(&out).Error
	return out, wrap(err)
}

func (r *TableRepository) CountByNumber(restaurantID uint, tableNumber string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Table{}).
		Where("restaurant_id = ? AND table_number = ?", restaurantID, tableNumber).
		Count(&n).Error
	return n, wrap(err)
}

func (r *TableRepository) Save(t *entity.Table) error {
	return wrap(r.DB.Save(t).Error)
}

// Occupy marks the table taken by a freshly placed order.
func (r *TableRepository) Occupy(tx *gorm.DB, tableID, orderID uint) error {
	return wrap(tx.Model(&entity.Table{}).Where("id = ?", tableID).
		Updates(map[string]any{
			"status":           entity.TableOccupied,
			"current_order_id": orderID,
		}).Error)
}

// Release frees the table once its order reaches a terminal status.
func (r *TableRepository) Release(tx *gorm.DB, tableID uint) error {
	return wrap(tx.Model(&entity.Table{}).Where("id = ?", tableID).
		Updates(map[string]any{
			"status":           entity.TableAvailable,
			"current_order_id": nil,
		}).Error)
}

// Delete is unconditional; order history keeps its own table reference.
func (r *TableRepository) Delete(restaurantID, tableID uint) error {
	res := r.DB.Where("id = ? AND restaurant_id = ?", tableID, restaurantID).Delete(&entity.Table{})
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
