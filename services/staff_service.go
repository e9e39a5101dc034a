package services

import (
	"fmt"
	"strings"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"

	"golang.org/x/crypto/bcrypt"
)

// StaffService covers admin management of staff accounts within one tenant.
type StaffService struct {
	Repo *repository.UserRepository
}

func NewStaffService(repo *repository.UserRepository) *StaffService {
	return &StaffService{Repo: repo}
}

type CreateStaffIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (s *StaffService) Create(restaurantID uint, in *CreateStaffIn) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	if n, err := s.Repo.CountByUsername(username); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, fmt.Errorf("%w: username already exists", repository.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &entity.User{
		Username:     username,
		Password:     string(hash),
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        in.Phone,
		Role:         entity.RoleStaff,
		RestaurantID: &restaurantID,
		IsActive:     true,
	}
	if err := s.Repo.Create(s.Repo.DB, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) List(restaurantID uint) ([]entity.User, error) {
	return s.Repo.ListStaffForRestaurant(restaurantID)
}

// ToggleActive flips a staff member's active flag; inactive staff cannot log
// in.
func (s *StaffService) ToggleActive(restaurantID, userID uint) (*entity.User, error) {
	staff, err := s.Repo.GetStaffForRestaurant(restaurantID, userID)
	if err != nil {
		return nil, err
	}
	staff.IsActive = !staff.IsActive
	if err := s.Repo.Save(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) Delete(restaurantID, userID uint) error {
	if _, err := s.Repo.GetStaffForRestaurant(restaurantID, userID); err != nil {
		return err
	}
	return s.Repo.Delete(restaurantID, userID)
}
