package repository

import (
	"github.com/Ayush29kumar/Restraunt-SaaS/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return wrap(tx.Create(rest).Error)
}

func (r *RestaurantRepository) GetByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &rest, nil
}

// GetActiveBySlug resolves a customer-facing restaurant; inactive tenants
// look absent.
func (r *RestaurantRepository) GetActiveBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Where("slug = ? AND is_active = ?", slug, true).First(&rest).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &rest, nil
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, wrap(err)
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return wrap(r.DB.Save(rest).Error)
}

func (r *RestaurantRepository) CountBySubdomain(subdomain string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Restaurant{}).Where("subdomain = ?", subdomain).Count(&n).Error
	return n, wrap(err)
}

func (r *RestaurantRepository) CountBySlug(slug string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug).Count(&n).Error
	return n, wrap(err)
}

// CountOrders reports how many orders reference the restaurant; deletion is
// blocked while any exist.
func (r *RestaurantRepository) CountOrders(restaurantID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restaurantID).Count(&n).Error
	return n, wrap(err)
}

func (r *RestaurantRepository) Delete(tx *gorm.DB, restaurantID uint) error {
	return wrap(tx.Delete(&entity.Restaurant{}, restaurantID).Error)
}

type PlatformStats struct {
	TotalRestaurants  int64 `json:"totalRestaurants"`
	ActiveRestaurants int64 `json:"activeRestaurants"`
	TotalUsers        int64 `json:"totalUsers"`
	TotalOrders       int64 `json:"totalOrders"`
}

func (r *RestaurantRepository) Stats() (*PlatformStats, error) {
	var s PlatformStats
	if err := r.DB.Model(&entity.Restaurant{}).Count(&s.TotalRestaurants).Error; err != nil {
		return nil, wrap(err)
	}
	if err := r.DB.Model(&entity.Restaurant{}).Where("is_active = ?", true).Count(&s.ActiveRestaurants).Error; err != nil {
		return nil, wrap(err)
	}
	if err := r.DB.Model(&entity.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, wrap(err)
	}
	if err := r.DB.Model(&entity.Order{}).Count(&s.TotalOrders).Error; err != nil {
		return nil, wrap(err)
	}
	return &s, nil
}
