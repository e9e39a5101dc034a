package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/utils"
)

// AuthService handles password login for staff/admin/superadmin. Customers
// never log in here; they are identified by phone at checkout.
type AuthService struct {
	UserRepo  *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: repo, JWTSecret: secret, JWTTTL: ttl}
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Login verifies username/password and issues a JWT carrying the user's role
// and tenant.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.UserRepo.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive || user.Role == entity.RoleCustomer {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	var restaurantID uint
	if user.RestaurantID != nil {
		restaurantID = *user.RestaurantID
	}

	token, err := utils.GenerateToken(user.ID, user.Role, restaurantID, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.UserRepo.Save(user); err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.UserRepo.GetByID(userID)
}
