package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// orderNumberAttempts bounds the retry loop around the count-then-insert
// numbering scheme. Two checkouts racing on the same restaurant/day can
// compute the same sequence; the composite unique index rejects the loser,
// which recounts and tries again.
const orderNumberAttempts = 3

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	UserRepo  *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, TableRepo: tableRepo, UserRepo: userRepo}
}

// generateOrderNumber derives {prefix}-{YYYYMMDD}-{NNNN} where NNNN is
// 1 + the restaurant's order count for the server-local day of at.
func (s *OrderService) generateOrderNumber(tx *gorm.DB, rest *entity.Restaurant, at time.Time) (string, error) {
	prefix := rest.OrderPrefix
	if prefix == "" {
		prefix = "ORD"
	}

	startOfDay := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)

	count, err := s.Repo.CountForDay(tx, rest.ID, startOfDay, endOfDay)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s-%04d", prefix, at.Format("20060102"), count+1), nil
}

// PlaceOrder is checkout. Resolves or creates the customer by phone, numbers
// the order, copies the cart lines verbatim, and occupies the table, all in
// one transaction. Retried on an order-number collision. The caller clears
// the session cart after success.
func (s *OrderService) PlaceOrder(
	rest *entity.Restaurant,
	table *entity.Table,
	cart *session.Cart,
	phone, notes string,
) (*entity.Order, error) {
	if cart == nil || len(cart.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrValidation)
	}
	if !rest.IsActive {
		return nil, repository.ErrNotFound
	}
	if !table.IsActive {
		return nil, repository.ErrNotFound
	}
	if table.RestaurantID != rest.ID {
		return nil, repository.ErrNotFound
	}

	var out *entity.Order
	var lastErr error

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		lastErr = s.DB.Transaction(func(tx *gorm.DB) error {
			customer, err := s.UserRepo.FindOrCreateCustomer(tx, rest.ID, phone)
			if err != nil {
				return err
			}

			now := time.Now()
			number, err := s.generateOrderNumber(tx, rest, now)
			if err != nil {
				return err
			}

			order := entity.Order{
				RestaurantID:  rest.ID,
				TableID:       table.ID,
				CustomerID:    &customer.ID,
				CustomerPhone: phone,
				OrderNumber:   number,
				Status:        entity.OrderPending,
				PaymentStatus: entity.PaymentPending,
				PaymentMethod: entity.PayMethodCash,
				Notes:         notes,
				PlacedAt:      now,
			}
			for _, it := range cart.Items {
				order.Items = append(order.Items, entity.OrderItem{
					MenuItemID: it.MenuItemID,
					Name:       it.Name,
					Price:      it.Price,
					Quantity:   it.Quantity,
					Notes:      it.Notes,
				})
			}
			order.Recalculate()

			if err := s.Repo.Create(tx, &order); err != nil {
				return err
			}

			ev := entity.OrderStatusEvent{
				OrderID:     order.ID,
				Status:      entity.OrderPending,
				Timestamp:   now,
				UpdatedByID: nil,
			}
			if err := s.Repo.AppendStatusEvent(tx, &ev); err != nil {
				return err
			}
			order.StatusHistory = append(order.StatusHistory, ev)

			if err := s.TableRepo.Occupy(tx, table.ID, order.ID); err != nil {
				return err
			}

			out = &order
			return nil
		})

		if lastErr == nil {
			return out, nil
		}
		if !errors.Is(lastErr, repository.ErrConflict) {
			return nil, lastErr
		}
		log.Warn().Uint("restaurant_id", rest.ID).Int("attempt", attempt+1).
			Msg("order number collision, retrying")
	}

	return nil, lastErr
}

// Transition moves an order along the status workflow. Illegal targets are
// rejected without mutation. The status write, the history append, and the
// table release on terminal statuses share one transaction.
func (s *OrderService) Transition(restaurantID, orderID uint, newStatus string, actingUserID uint) (*entity.Order, error) {
	if !entity.ValidOrderStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, newStatus)
	}

	order, err := s.Repo.GetForRestaurant(restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: cannot change status from %s to %s",
			ErrInvalidTransition, order.Status, newStatus)
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order.Status = newStatus
		if newStatus == entity.OrderDone && order.CompletedAt == nil {
			order.CompletedAt = &now
		}
		if newStatus == entity.OrderServed {
			order.ServedByID = &actingUserID
		}
		order.Recalculate()
		if err := s.Repo.Save(tx, order); err != nil {
			return err
		}

		ev := entity.OrderStatusEvent{
			OrderID:     order.ID,
			Status:      newStatus,
			Timestamp:   now,
			UpdatedByID: &actingUserID,
		}
		if err := s.Repo.AppendStatusEvent(tx, &ev); err != nil {
			return err
		}

		if entity.TerminalStatus(newStatus) {
			if err := s.TableRepo.Release(tx, order.TableID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetPayment records how an order was settled. Payment fields are
// bookkeeping only; no gateway is involved.
func (s *OrderService) SetPayment(restaurantID, orderID uint, status, method string) (*entity.Order, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}
	if method != "" && !entity.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	order, err := s.Repo.GetForRestaurant(restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = status
	if method != "" {
		order.PaymentMethod = method
	}
	order.Recalculate()
	if err := s.Repo.Save(s.DB, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(restaurantID uint, f repository.OrderFilter) ([]entity.Order, error) {
	return s.Repo.ListForRestaurant(restaurantID, f)
}

func (s *OrderService) Detail(restaurantID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetDetail(restaurantID, orderID)
}

// StatusOf is the pollable read used by customers waiting on their order.
func (s *OrderService) StatusOf(restaurantID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForRestaurant(restaurantID, orderID)
}

func (s *OrderService) ListForCustomer(restaurantID, customerID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListForCustomer(restaurantID, customerID, limit)
}

// ActiveForTable finds a table's current non-terminal order by table number.
func (s *OrderService) ActiveForTable(restaurantID uint, tableNumber string) (*entity.Order, error) {
	table, err := s.TableRepo.GetByNumber(restaurantID, tableNumber)
	if err != nil {
		return nil, err
	}
	return s.Repo.ActiveForTable(restaurantID, table.ID)
}

// DayStats aggregates today's per-status counts for the staff dashboard.
type DayStats struct {
	Pending   int64 `json:"pending"`
	Preparing int64 `json:"preparing"`
	Served    int64 `json:"served"`
	Done      int64 `json:"done"`
}

func (s *OrderService) TodayStats(restaurantID uint) (*DayStats, error) {
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var st DayStats
	var err error
	if st.Pending, err = s.Repo.CountByStatusSince(restaurantID, entity.OrderPending, since); err != nil {
		return nil, err
	}
	if st.Preparing, err = s.Repo.CountByStatusSince(restaurantID, entity.OrderPreparing, since); err != nil {
		return nil, err
	}
	if st.Served, err = s.Repo.CountByStatusSince(restaurantID, entity.OrderServed, since); err != nil {
		return nil, err
	}
	if st.Done, err = s.Repo.CountByStatusSince(restaurantID, entity.OrderDone, since); err != nil {
		return nil, err
	}
	return &st, nil
}

// ActiveToday lists today's non-terminal orders, oldest first, for the
// staff dashboard queue.
func (s *OrderService) ActiveToday(restaurantID uint) ([]entity.Order, error) {
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	orders, err := s.Repo.ListForRestaurant(restaurantID, repository.OrderFilter{Since: &since})
	if err != nil {
		return nil, err
	}
	active := make([]entity.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- { // ListForRestaurant is newest-first
		if !entity.TerminalStatus(orders[i].Status) {
			active = append(active, orders[i])
		}
	}
	return active, nil
}
