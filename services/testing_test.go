package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The named
// shared-cache DSN keeps the schema alive across gorm's pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Table{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderStatusEvent{},
	))
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, name, slug string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{
		Name: name, Slug: slug, Subdomain: slug,
		IsActive: true, Currency: "$", Timezone: "UTC", OrderPrefix: "ORD",
	}
	require.NoError(t, db.Create(rest).Error)
	return rest
}

func seedTable(t *testing.T, db *gorm.DB, restaurantID uint, number string) *entity.Table {
	t.Helper()
	table := &entity.Table{
		RestaurantID: restaurantID, TableNumber: number,
		Capacity: 4, Location: entity.LocationIndoor,
		Status: entity.TableAvailable, IsActive: true,
	}
	require.NoError(t, db.Create(table).Error)
	return table
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		RestaurantID: restaurantID, Name: name, Price: price,
		Category: entity.CategoryMainCourse, IsAvailable: true, PreparationTime: 15,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		repository.NewUserRepository(db),
	)
}
