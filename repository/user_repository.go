package repository

import (
	"errors"
	"fmt"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return wrap(tx.Create(u).Error)
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&n).Error
	return n, wrap(err)
}

func (r *UserRepository) Save(u *entity.User) error {
	return wrap(r.DB.Save(u).Error)
}

// FindOrCreateCustomer resolves a customer by phone within one tenant,
// creating the record on first contact. Customers carry no password.
func (r *UserRepository) FindOrCreateCustomer(tx *gorm.DB, restaurantID uint, phone string) (*entity.User, error) {
	var u entity.User
	err := tx.Where("phone = ? AND role = ? AND restaurant_id = ?",
		phone, entity.RoleCustomer, restaurantID).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrap(err)
	}

	tail := phone
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	// the synthetic username carries the tenant so the same phone can be a
	// customer of several restaurants under the global unique index
	u = entity.User{
		Username:     fmt.Sprintf("customer_%d_%s", restaurantID, phone),
		Phone:        phone,
		Name:         "Customer " + tail,
		Role:         entity.RoleCustomer,
		RestaurantID: &restaurantID,
	}
	if err := tx.Create(&u).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

// GetStaffForRestaurant scopes staff lookups to one tenant.
func (r *UserRepository) GetStaffForRestaurant(restaurantID, userID uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("id = ? AND restaurant_id = ? AND role = ?",
		userID, restaurantID, entity.RoleStaff).First(&u).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (r *UserRepository) ListStaffForRestaurant(restaurantID uint) ([]entity.User, error) {
	var out []entity.User
	err := r.DB.Where("restaurant_id = ? AND role = ?", restaurantID, entity.RoleStaff).
		Order("name").Find(&out).Error
	return out, wrap(err)
}

func (r *UserRepository) GetAdminForRestaurant(restaurantID uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("restaurant_id = ? AND role = ?", restaurantID, entity.RoleAdmin).First(&u).Error
	if err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (r *UserRepository) Delete(restaurantID, userID uint) error {
	res := r.DB.Where("id = ? AND restaurant_id = ?", userID, restaurantID).Delete(&entity.User{})
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
