package services

import (
	"fmt"
	"strings"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RestaurantService is the superadmin's provisioning surface.
type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, userRepo *repository.UserRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, UserRepo: userRepo}
}

type ProvisionIn struct {
	Name      string `json:"name" binding:"required"`
	Subdomain string `json:"subdomain" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	AdminUsername string `json:"adminUsername" binding:"required"`
	AdminPassword string `json:"adminPassword" binding:"required"`
	AdminName     string `json:"adminName" binding:"required"`
	AdminEmail    string `json:"adminEmail"`
}

// Provision creates a restaurant and its initial admin user together.
func (s *RestaurantService) Provision(createdByID uint, in *ProvisionIn) (*entity.Restaurant, error) {
	subdomain := strings.ToLower(strings.TrimSpace(in.Subdomain))
	slug := utils.Slugify(in.Name)
	if slug == "" {
		return nil, fmt.Errorf("%w: name yields an empty slug", ErrValidation)
	}

	if n, err := s.Repo.CountBySubdomain(subdomain); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, fmt.Errorf("%w: subdomain already exists", repository.ErrConflict)
	}
	if n, err := s.Repo.CountBySlug(slug); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, fmt.Errorf("%w: restaurant slug already exists", repository.ErrConflict)
	}
	if n, err := s.UserRepo.CountByUsername(strings.ToLower(in.AdminUsername)); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, fmt.Errorf("%w: admin username already exists", repository.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rest := &entity.Restaurant{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Subdomain:   subdomain,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		IsActive:    true,
		CreatedByID: createdByID,
		Currency:    "$",
		Timezone:    "UTC",
		OrderPrefix: "ORD",
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rest); err != nil {
			return err
		}
		admin := &entity.User{
			Username:     strings.ToLower(in.AdminUsername),
			Password:     string(hash),
			Name:         in.AdminName,
			Email:        strings.ToLower(strings.TrimSpace(in.AdminEmail)),
			Role:         entity.RoleAdmin,
			RestaurantID: &rest.ID,
			IsActive:     true,
		}
		return s.UserRepo.Create(tx, admin)
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

type UpdateRestaurantIn struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	IsActive    *bool  `json:"isActive"`
	Currency    string `json:"currency"`
	Timezone    string `json:"timezone"`
	OrderPrefix string `json:"orderPrefix"`
}

func (s *RestaurantService) Update(id uint, in *UpdateRestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		rest.Name = strings.TrimSpace(in.Name)
	}
	if in.Address != "" {
		rest.Address = in.Address
	}
	if in.Phone != "" {
		rest.Phone = in.Phone
	}
	if in.Email != "" {
		rest.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.IsActive != nil {
		rest.IsActive = *in.IsActive
	}
	if in.Currency != "" {
		rest.Currency = in.Currency
	}
	if in.Timezone != "" {
		rest.Timezone = in.Timezone
	}
	if in.OrderPrefix != "" {
		rest.OrderPrefix = in.OrderPrefix
	}

	if err := s.Repo.Update(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.List()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	return s.Repo.GetByID(id)
}

// Admin returns the tenant's admin account for the platform detail view.
func (s *RestaurantService) Admin(restaurantID uint) (*entity.User, error) {
	return s.UserRepo.GetAdminForRestaurant(restaurantID)
}

func (s *RestaurantService) Stats() (*repository.PlatformStats, error) {
	return s.Repo.Stats()
}

// Delete removes a tenant only while no orders reference it; otherwise the
// tenant is soft-disabled through Update.
func (s *RestaurantService) Delete(id uint) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	n, err := s.Repo.CountOrders(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: restaurant has orders, disable it instead", repository.ErrConflict)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
}
