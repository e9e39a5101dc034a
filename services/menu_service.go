package services

import (
	"fmt"
	"strings"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Price           int64    `json:"price"`
	Category        string   `json:"category"`
	Images          []string `json:"images"`
	ARModelAndroid  string   `json:"arModelAndroid"`
	ARModelIOS      string   `json:"arModelIos"`
	IsVegetarian    bool     `json:"isVegetarian"`
	IsVegan         bool     `json:"isVegan"`
	IsGlutenFree    bool     `json:"isGlutenFree"`
	SpicyLevel      int      `json:"spicyLevel"`
	PreparationTime int      `json:"preparationTime"`
	Tags            string   `json:"tags"`      // comma separated
	Allergens       string   `json:"allergens"` // comma separated
	SortOrder       int      `json:"sortOrder"`
}

func (in *MenuItemIn) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if in.Category == "" {
		in.Category = entity.CategoryOther
	}
	if !entity.ValidMenuCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if in.SpicyLevel < 0 || in.SpicyLevel > 5 {
		return fmt.Errorf("%w: spicy level must be between 0 and 5", ErrValidation)
	}
	if in.PreparationTime <= 0 {
		in.PreparationTime = 15
	}
	return nil
}

func splitCSV(s string) entity.StringList {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(entity.StringList, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *MenuService) Create(restaurantID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		RestaurantID:    restaurantID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		Images:          entity.StringList(in.Images),
		ARModelAndroid:  in.ARModelAndroid,
		ARModelIOS:      in.ARModelIOS,
		IsVegetarian:    in.IsVegetarian,
		IsVegan:         in.IsVegan,
		IsGlutenFree:    in.IsGlutenFree,
		SpicyLevel:      in.SpicyLevel,
		PreparationTime: in.PreparationTime,
		IsAvailable:     true,
		Tags:            splitCSV(in.Tags),
		Allergens:       splitCSV(in.Allergens),
		SortOrder:       in.SortOrder,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(restaurantID, itemID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item, err := s.Repo.GetForRestaurant(restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.Images = entity.StringList(in.Images)
	item.ARModelAndroid = in.ARModelAndroid
	item.ARModelIOS = in.ARModelIOS
	item.IsVegetarian = in.IsVegetarian
	item.IsVegan = in.IsVegan
	item.IsGlutenFree = in.IsGlutenFree
	item.SpicyLevel = in.SpicyLevel
	item.PreparationTime = in.PreparationTime
	item.Tags = splitCSV(in.Tags)
	item.Allergens = splitCSV(in.Allergens)
	item.SortOrder = in.SortOrder

	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetAvailability hides or shows an item on the customer menu; unavailable
// items are never deleted by this path.
func (s *MenuService) SetAvailability(restaurantID, itemID uint, available bool) (*entity.MenuItem, error) {
	item, err := s.Repo.GetForRestaurant(restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	item.IsAvailable = available
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Get(restaurantID, itemID uint) (*entity.MenuItem, error) {
	return s.Repo.GetForRestaurant(restaurantID, itemID)
}

func (s *MenuService) List(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Repo.ListForRestaurant(restaurantID)
}

func (s *MenuService) Delete(restaurantID, itemID uint) error {
	return s.Repo.Delete(restaurantID, itemID)
}

// CustomerMenu groups available items by display category for the menu page.
func (s *MenuService) CustomerMenu(restaurantID uint) (map[string][]entity.MenuItem, error) {
	items, err := s.Repo.ListAvailable(restaurantID)
	if err != nil {
		return nil, err
	}
	menu := make(map[string][]entity.MenuItem)
	for _, it := range items {
		name := it.CategoryName()
		menu[name] = append(menu[name], it)
	}
	return menu, nil
}
