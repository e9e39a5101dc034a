package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrderAt(t *testing.T, db *gorm.DB, restID, tableID uint, number string, at time.Time) *entity.Order {
	t.Helper()
	o := &entity.Order{
		RestaurantID:  restID,
		TableID:       tableID,
		CustomerPhone: "5550000000",
		OrderNumber:   number,
		Status:        entity.OrderPending,
		PlacedAt:      at,
	}
	o.CreatedAt = at
	require.NoError(t, db.Create(o).Error)
	return o
}

func twoLineCart() *session.Cart {
	c := &session.Cart{Items: []session.CartItem{
		{MenuItemID: 1, Name: "Item A", Price: 1000, Quantity: 2},
		{MenuItemID: 2, Name: "Item B", Price: 500, Quantity: 1},
	}}
	c.Recalculate()
	return c
}

func TestPlaceOrder(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "window seat")
	require.NoError(t, err)

	assert.Equal(t, int64(2500), order.Subtotal)
	assert.Equal(t, int64(250), order.Tax)
	assert.Equal(t, int64(2750), order.Total)
	assert.Equal(t, order.Subtotal+order.Tax, order.Total)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Len(t, order.Items, 2)

	wantNumber := fmt.Sprintf("ORD-%s-0001", time.Now().Format("20060102"))
	assert.Equal(t, wantNumber, order.OrderNumber)

	// table is occupied and points at the new order
	var got entity.Table
	require.NoError(t, db.First(&got, table.ID).Error)
	assert.Equal(t, entity.TableOccupied, got.Status)
	require.NotNil(t, got.CurrentOrderID)
	assert.Equal(t, order.ID, *got.CurrentOrderID)

	// history starts with a single pending entry
	var events []entity.OrderStatusEvent
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, entity.OrderPending, events[0].Status)
}

func TestPlaceOrderSequencesPerDay(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	t1 := seedTable(t, db, rest.ID, "1")
	t2 := seedTable(t, db, rest.ID, "2")
	svc := newOrderService(db)

	first, err := svc.PlaceOrder(rest, t1, twoLineCart(), "5551111111", "")
	require.NoError(t, err)
	second, err := svc.PlaceOrder(rest, t2, twoLineCart(), "5552222222", "")
	require.NoError(t, err)

	date := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("ORD-%s-0001", date), first.OrderNumber)
	assert.Equal(t, fmt.Sprintf("ORD-%s-0002", date), second.OrderNumber)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}

func TestPlaceOrderUsesRestaurantPrefix(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	rest.OrderPrefix = "MAR"
	require.NoError(t, db.Save(rest).Error)
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("MAR-%s-0001", time.Now().Format("20060102")), order.OrderNumber)
}

func TestPlaceOrderFindsOrCreatesCustomer(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	t1 := seedTable(t, db, rest.ID, "1")
	t2 := seedTable(t, db, rest.ID, "2")
	svc := newOrderService(db)

	first, err := svc.PlaceOrder(rest, t1, twoLineCart(), "5551234567", "")
	require.NoError(t, err)
	second, err := svc.PlaceOrder(rest, t2, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	require.NotNil(t, first.CustomerID)
	require.NotNil(t, second.CustomerID)
	assert.Equal(t, *first.CustomerID, *second.CustomerID)

	var n int64
	require.NoError(t, db.Model(&entity.User{}).
		Where("phone = ? AND role = ? AND restaurant_id = ?", "5551234567", entity.RoleCustomer, rest.ID).
		Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestPlaceOrderValidation(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	_, err := svc.PlaceOrder(rest, table, &session.Cart{}, "5551234567", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.PlaceOrder(rest, table, twoLineCart(), "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOrderInactiveRestaurant(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	rest.IsActive = false
	svc := newOrderService(db)

	_, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTransitionFullLifecycle(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	staffID := uint(42)
	for i, status := range []string{entity.OrderPreparing, entity.OrderServed, entity.OrderDone} {
		order, err = svc.Transition(rest.ID, order.ID, status, staffID)
		require.NoError(t, err, status)
		assert.Equal(t, status, order.Status)

		// exactly one history entry per successful transition
		var n int64
		require.NoError(t, db.Model(&entity.OrderStatusEvent{}).
			Where("order_id = ?", order.ID).Count(&n).Error)
		assert.Equal(t, int64(i+2), n) // +1 for the initial pending entry
	}

	assert.NotNil(t, order.CompletedAt)

	var got entity.Table
	require.NoError(t, db.First(&got, table.ID).Error)
	assert.Equal(t, entity.TableAvailable, got.Status)
	assert.Nil(t, got.CurrentOrderID)
}

func TestTransitionRejectsIllegalJump(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	_, err = svc.Transition(rest.ID, order.ID, entity.OrderDone, 42)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// order and table are untouched
	var gotOrder entity.Order
	require.NoError(t, db.First(&gotOrder, order.ID).Error)
	assert.Equal(t, entity.OrderPending, gotOrder.Status)
	assert.Nil(t, gotOrder.CompletedAt)

	var gotTable entity.Table
	require.NoError(t, db.First(&gotTable, table.ID).Error)
	assert.Equal(t, entity.TableOccupied, gotTable.Status)

	var n int64
	require.NoError(t, db.Model(&entity.OrderStatusEvent{}).
		Where("order_id = ?", order.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestTransitionCancelReleasesTable(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	order, err = svc.Transition(rest.ID, order.ID, entity.OrderCancelled, 42)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, order.Status)
	assert.Nil(t, order.CompletedAt) // only done stamps completion

	var got entity.Table
	require.NoError(t, db.First(&got, table.ID).Error)
	assert.Equal(t, entity.TableAvailable, got.Status)
	assert.Nil(t, got.CurrentOrderID)
}

func TestTransitionUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	_, err = svc.Transition(rest.ID, order.ID, "delivered", 42)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTransitionScopedToTenant(t *testing.T) {
	db := newTestDB(t)
	mario := seedRestaurant(t, db, "Mario", "mario")
	luigi := seedRestaurant(t, db, "Luigi", "luigi")
	table := seedTable(t, db, mario.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(mario, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	// another tenant sees the order as absent
	_, err = svc.Transition(luigi.ID, order.ID, entity.OrderPreparing, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActiveForTable(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	got, err := svc.ActiveForTable(rest.ID, "5")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// terminal orders drop off the active lookup
	_, err = svc.Transition(rest.ID, order.ID, entity.OrderCancelled, 42)
	require.NoError(t, err)
	_, err = svc.ActiveForTable(rest.ID, "5")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTodayStats(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	t1 := seedTable(t, db, rest.ID, "1")
	t2 := seedTable(t, db, rest.ID, "2")
	svc := newOrderService(db)

	first, err := svc.PlaceOrder(rest, t1, twoLineCart(), "5551111111", "")
	require.NoError(t, err)
	_, err = svc.PlaceOrder(rest, t2, twoLineCart(), "5552222222", "")
	require.NoError(t, err)

	_, err = svc.Transition(rest.ID, first.ID, entity.OrderPreparing, 42)
	require.NoError(t, err)

	stats, err := svc.TodayStats(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Preparing)
	assert.Zero(t, stats.Served)
	assert.Zero(t, stats.Done)
}

func TestPlaceOrderSurfacesNumberConflict(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	// an order already holds today's first number but sits outside today's
	// count window, so every recount reproduces the same collision
	taken := fmt.Sprintf("ORD-%s-0001", time.Now().Format("20060102"))
	seedOrderAt(t, db, rest.ID, table.ID, taken, time.Now().Add(-24*time.Hour))

	_, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	assert.ErrorIs(t, err, repository.ErrConflict)

	// the number was never persisted twice
	var n int64
	require.NoError(t, db.Model(&entity.Order{}).
		Where("restaurant_id = ? AND order_number = ?", rest.ID, taken).
		Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSameCustomerPhoneAcrossRestaurants(t *testing.T) {
	db := newTestDB(t)
	mario := seedRestaurant(t, db, "Mario", "mario")
	luigi := seedRestaurant(t, db, "Luigi", "luigi")
	t1 := seedTable(t, db, mario.ID, "1")
	t2 := seedTable(t, db, luigi.ID, "1")
	svc := newOrderService(db)

	first, err := svc.PlaceOrder(mario, t1, twoLineCart(), "5551234567", "")
	require.NoError(t, err)
	second, err := svc.PlaceOrder(luigi, t2, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	// one customer record per tenant, not a shared one
	require.NotNil(t, first.CustomerID)
	require.NotNil(t, second.CustomerID)
	assert.NotEqual(t, *first.CustomerID, *second.CustomerID)

	var n int64
	require.NoError(t, db.Model(&entity.User{}).
		Where("phone = ? AND role = ?", "5551234567", entity.RoleCustomer).
		Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestListFilterBoundsDay(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	now := time.Now()
	yesterdayNoon := now.Add(-24 * time.Hour)
	old := seedOrderAt(t, db, rest.ID, table.ID, "ORD-X-0001", yesterdayNoon)
	seedOrderAt(t, db, rest.ID, table.ID, "ORD-X-0002", now)

	day := time.Date(yesterdayNoon.Year(), yesterdayNoon.Month(), yesterdayNoon.Day(), 0, 0, 0, 0, yesterdayNoon.Location())
	end := day.Add(24*time.Hour - time.Nanosecond)

	orders, err := svc.List(rest.ID, repository.OrderFilter{Since: &day, Until: &end})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, old.ID, orders[0].ID)
}

func TestSetPayment(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)

	order, err = svc.SetPayment(rest.ID, order.ID, entity.PaymentPaid, entity.PayMethodCard)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, entity.PayMethodCard, order.PaymentMethod)

	// omitting the method keeps the recorded one
	order, err = svc.SetPayment(rest.ID, order.ID, entity.PaymentRefunded, "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentRefunded, order.PaymentStatus)
	assert.Equal(t, entity.PayMethodCard, order.PaymentMethod)
}

func TestSetPaymentValidation(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	_, err = svc.SetPayment(rest.ID, order.ID, "settled", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.SetPayment(rest.ID, order.ID, entity.PaymentPaid, "cheque")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.SetPayment(rest.ID+1, order.ID, entity.PaymentPaid, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDetailLoadsHistoryInOrder(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	table := seedTable(t, db, rest.ID, "5")
	svc := newOrderService(db)

	order, err := svc.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)
	_, err = svc.Transition(rest.ID, order.ID, entity.OrderPreparing, 42)
	require.NoError(t, err)
	_, err = svc.Transition(rest.ID, order.ID, entity.OrderServed, 42)
	require.NoError(t, err)

	detail, err := svc.Detail(rest.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, detail.StatusHistory, 3)
	assert.Equal(t, entity.OrderPending, detail.StatusHistory[0].Status)
	assert.Equal(t, entity.OrderPreparing, detail.StatusHistory[1].Status)
	assert.Equal(t, entity.OrderServed, detail.StatusHistory[2].Status)
}
