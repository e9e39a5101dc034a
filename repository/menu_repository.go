package repository

import (
	"github.com/Ayush29kumar/Restraunt-SaaS/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return wrap(r.DB.Create(m).Error)
}

func (r *MenuRepository) GetForRestaurant(restaurantID, itemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).First(&m).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &m, nil
}

// GetAvailable resolves a menu item for cart use: must exist, belong to the
// restaurant, and be currently available.
func (r *MenuRepository) GetAvailable(restaurantID, itemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Where("id = ? AND restaurant_id = ? AND is_available = ?",
		itemID, restaurantID, true).First(&m).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &m, nil
}

// ListAvailable returns the customer-facing menu in display order.
func (r *MenuRepository) ListAvailable(restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("category, sort_order, name").Find(&out).Error
	return out, wrap(err)
}

// ListForRestaurant returns everything, unavailable items included, for admin
// screens.
func (r *MenuRepository) ListForRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("category, sort_order, name").Find(&out).Error
	return out, wrap(err)
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return wrap(r.DB.Save(m).Error)
}

func (r *MenuRepository) Delete(restaurantID, itemID uint) error {
	res := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).Delete(&entity.MenuItem{})
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MenuRepository) CountForRestaurant(restaurantID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Where("restaurant_id = ?", restaurantID).Count(&n).Error
	return n, wrap(err)
}
