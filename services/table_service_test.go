package services

import (
	"testing"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTableService(t *testing.T) (*TableService, *entity.Restaurant, *OrderService) {
	t.Helper()
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	svc := NewTableService(
		repository.NewTableRepository(db),
		repository.NewRestaurantRepository(db),
		"https://order.example.com",
	)
	return svc, rest, newOrderService(db)
}

func TestCreateTable(t *testing.T) {
	svc, rest, _ := newTestTableService(t)

	table, err := svc.Create(rest.ID, &CreateTableIn{TableNumber: "7", Capacity: 2, Location: entity.LocationOutdoor})
	require.NoError(t, err)

	assert.Equal(t, "7", table.TableNumber)
	assert.Equal(t, entity.TableAvailable, table.Status)
	assert.True(t, table.IsActive)
	assert.Equal(t, "https://order.example.com/r/mario/table/7", table.QRCode)
}

func TestCreateTableDefaults(t *testing.T) {
	svc, rest, _ := newTestTableService(t)

	table, err := svc.Create(rest.ID, &CreateTableIn{TableNumber: "1"})
	require.NoError(t, err)
	assert.Equal(t, 4, table.Capacity)
	assert.Equal(t, entity.LocationIndoor, table.Location)
}

func TestCreateTableDuplicateNumber(t *testing.T) {
	svc, rest, _ := newTestTableService(t)

	_, err := svc.Create(rest.ID, &CreateTableIn{TableNumber: "7"})
	require.NoError(t, err)
	_, err = svc.Create(rest.ID, &CreateTableIn{TableNumber: "7"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestCreateTableSameNumberOtherRestaurant(t *testing.T) {
	db := newTestDB(t)
	mario := seedRestaurant(t, db, "Mario", "mario")
	luigi := seedRestaurant(t, db, "Luigi", "luigi")
	svc := NewTableService(
		repository.NewTableRepository(db),
		repository.NewRestaurantRepository(db),
		"https://order.example.com",
	)

	_, err := svc.Create(mario.ID, &CreateTableIn{TableNumber: "7"})
	require.NoError(t, err)
	table, err := svc.Create(luigi.ID, &CreateTableIn{TableNumber: "7"})
	require.NoError(t, err)
	assert.Equal(t, "https://order.example.com/r/luigi/table/7", table.QRCode)
}

func TestCreateTableBadLocation(t *testing.T) {
	svc, rest, _ := newTestTableService(t)

	_, err := svc.Create(rest.ID, &CreateTableIn{TableNumber: "7", Location: "rooftop"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateTableStatus(t *testing.T) {
	svc, rest, _ := newTestTableService(t)

	table, err := svc.Create(rest.ID, &CreateTableIn{TableNumber: "7"})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(rest.ID, table.ID, entity.TableCleaning)
	require.NoError(t, err)
	assert.Equal(t, entity.TableCleaning, got.Status)

	_, err = svc.UpdateStatus(rest.ID, table.ID, "broken")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestManualAvailableClearsCurrentOrder(t *testing.T) {
	svc, rest, orders := newTestTableService(t)

	table, err := svc.Create(rest.ID, &CreateTableIn{TableNumber: "7"})
	require.NoError(t, err)

	_, err = orders.PlaceOrder(rest, table, twoLineCart(), "5551234567", "")
	require.NoError(t, err)

	occupied, err := svc.Get(rest.ID, table.ID)
	require.NoError(t, err)
	require.NotNil(t, occupied.CurrentOrderID)

	// staff marks the table free by hand; the order link is dropped even
	// though the order itself is still pending
	got, err := svc.UpdateStatus(rest.ID, table.ID, entity.TableAvailable)
	require.NoError(t, err)
	assert.Equal(t, entity.TableAvailable, got.Status)
	assert.Nil(t, got.CurrentOrderID)
}

func TestUpdateTableStatusScopedToTenant(t *testing.T) {
	db := newTestDB(t)
	mario := seedRestaurant(t, db, "Mario", "mario")
	luigi := seedRestaurant(t, db, "Luigi", "luigi")
	svc := NewTableService(
		repository.NewTableRepository(db),
		repository.NewRestaurantRepository(db),
		"https://order.example.com",
	)

	table, err := svc.Create(mario.ID, &CreateTableIn{TableNumber: "7"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(luigi.ID, table.ID, entity.TableReserved)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
