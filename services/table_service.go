package services

import (
	"fmt"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
)

type TableService struct {
	Repo     *repository.TableRepository
	RestRepo *repository.RestaurantRepository
	BaseURL  string
}

func NewTableService(repo *repository.TableRepository, restRepo *repository.RestaurantRepository, baseURL string) *TableService {
	return &TableService{Repo: repo, RestRepo: restRepo, BaseURL: baseURL}
}

type CreateTableIn struct {
	TableNumber string `json:"tableNumber" binding:"required"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

func (s *TableService) Create(restaurantID uint, in *CreateTableIn) (*entity.Table, error) {
	if in.Capacity <= 0 {
		in.Capacity = 4
	}
	if in.Location == "" {
		in.Location = entity.LocationIndoor
	}
	if !entity.ValidTableLocation(in.Location) {
		return nil, fmt.Errorf("%w: unknown location %q", ErrValidation, in.Location)
	}

	n, err := s.Repo.CountByNumber(restaurantID, in.TableNumber)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: table number already exists", repository.ErrConflict)
	}

	rest, err := s.RestRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}

	table := &entity.Table{
		RestaurantID: restaurantID,
		TableNumber:  in.TableNumber,
		Capacity:     in.Capacity,
		Location:     in.Location,
		Status:       entity.TableAvailable,
		IsActive:     true,
		Notes:        in.Notes,
	}
	table.QRCode = table.QRData(s.BaseURL, rest.Slug)

	if err := s.Repo.Create(table); err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateStatus sets any of the four statuses directly. Setting available by
// hand also clears the current-order reference, regardless of the linked
// order's own status; this is the manual override escape hatch.
func (s *TableService) UpdateStatus(restaurantID, tableID uint, status string) (*entity.Table, error) {
	if !entity.ValidTableStatus(status) {
		return nil, fmt.Errorf("%w: unknown table status %q", ErrValidation, status)
	}

	table, err := s.Repo.GetForRestaurant(restaurantID, tableID)
	if err != nil {
		return nil, err
	}

	table.Status = status
	if status == entity.TableAvailable {
		table.CurrentOrderID = nil
	}
	if err := s.Repo.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) List(restaurantID uint) ([]entity.Table, error) {
	return s.Repo.ListForRestaurant(restaurantID)
}

func (s *TableService) Get(restaurantID, tableID uint) (*entity.Table, error) {
	return s.Repo.GetForRestaurant(restaurantID, tableID)
}

func (s *TableService) Delete(restaurantID, tableID uint) error {
	return s.Repo.Delete(restaurantID, tableID)
}
