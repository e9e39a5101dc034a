package services

import (
	"testing"

	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItem(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	item := seedMenuItem(t, db, rest.ID, "Pad Thai", 1200)

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: rest.ID, TableID: 1}

	require.NoError(t, svc.AddItem(sess, item.ID, 2, "no peanuts"))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, "Pad Thai", sess.Cart.Items[0].Name)
	assert.Equal(t, int64(1200), sess.Cart.Items[0].Price)
	assert.Equal(t, 2, sess.Cart.Items[0].Quantity)
	assert.Equal(t, int64(2400), sess.Cart.Items[0].Subtotal)
	assert.Equal(t, int64(2400), sess.Cart.Total)
}

func TestCartAddItemMergesExistingLine(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	item := seedMenuItem(t, db, rest.ID, "Pad Thai", 1200)

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: rest.ID, TableID: 1}

	require.NoError(t, svc.AddItem(sess, item.ID, 1, "mild"))
	require.NoError(t, svc.AddItem(sess, item.ID, 2, "extra spicy"))

	// merged by menu item reference: one line, summed quantity, newest notes
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, 3, sess.Cart.Items[0].Quantity)
	assert.Equal(t, "extra spicy", sess.Cart.Items[0].Notes)
	assert.Equal(t, int64(3600), sess.Cart.Total)
}

func TestCartAddItemDefaultsQuantity(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	item := seedMenuItem(t, db, rest.ID, "Spring Rolls", 500)

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: rest.ID, TableID: 1}

	require.NoError(t, svc.AddItem(sess, item.ID, 0, ""))
	assert.Equal(t, 1, sess.Cart.Items[0].Quantity)
}

func TestCartAddItemRejectsUnavailable(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	item := seedMenuItem(t, db, rest.ID, "Pad Thai", 1200)
	require.NoError(t, db.Model(item).Update("is_available", false).Error)

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: rest.ID, TableID: 1}

	err := svc.AddItem(sess, item.ID, 1, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, sess.Cart.Items)
}

func TestCartAddItemRejectsForeignRestaurant(t *testing.T) {
	db := newTestDB(t)
	mario := seedRestaurant(t, db, "Mario", "mario")
	luigi := seedRestaurant(t, db, "Luigi", "luigi")
	foreign := seedMenuItem(t, db, luigi.ID, "Lasagna", 1500)

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: mario.ID, TableID: 1}

	// cross-tenant items look absent, not forbidden
	err := svc.AddItem(sess, foreign.ID, 1, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCartUpdateItem(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	a := seedMenuItem(t, db, rest.ID, "Pad Thai", 1200)
	b := seedMenuItem(t, db, rest.ID, "Spring Rolls", 500)

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: rest.ID, TableID: 1}
	require.NoError(t, svc.AddItem(sess, a.ID, 2, ""))
	require.NoError(t, svc.AddItem(sess, b.ID, 1, ""))

	require.NoError(t, svc.UpdateItem(sess, a.ID, 5))
	assert.Equal(t, 5, sess.Cart.Items[0].Quantity)
	assert.Equal(t, int64(6000), sess.Cart.Items[0].Subtotal)
	assert.Equal(t, int64(6500), sess.Cart.Total)
}

func TestCartUpdateItemZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")
	a := seedMenuItem(t, db, rest.ID, "Pad Thai", 1200)
	b := seedMenuItem(t, db, rest.ID, "Spring Rolls", 500)

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: rest.ID, TableID: 1}
	require.NoError(t, svc.AddItem(sess, a.ID, 2, ""))
	require.NoError(t, svc.AddItem(sess, b.ID, 1, ""))

	require.NoError(t, svc.UpdateItem(sess, a.ID, 0))
	require.Len(t, sess.Cart.Items, 1)
	assert.Equal(t, b.ID, sess.Cart.Items[0].MenuItemID)
	assert.Equal(t, int64(500), sess.Cart.Total)
}

func TestCartUpdateItemMissing(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, "Mario", "mario")

	svc := NewCartService(repository.NewMenuRepository(db))
	sess := &session.Session{RestaurantID: rest.ID, TableID: 1}

	err := svc.UpdateItem(sess, 99, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
