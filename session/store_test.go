package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, 24*time.Hour), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := &Session{
		RestaurantID: 1,
		TableID:      5,
		Cart: Cart{
			Items: []CartItem{{MenuItemID: 9, Name: "Pad Thai", Price: 1200, Quantity: 2, Subtotal: 2400}},
			Total: 2400,
		},
	}
	require.NoError(t, store.Save(ctx, "abc", sess))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestStoreMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &Session{RestaurantID: 1}))
	assert.Equal(t, 24*time.Hour, mr.TTL("session:abc"))

	// sessions expire on their own
	mr.FastForward(25 * time.Hour)
	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &Session{RestaurantID: 1}))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartRecalculate(t *testing.T) {
	c := Cart{Items: []CartItem{
		{MenuItemID: 1, Price: 1000, Quantity: 2},
		{MenuItemID: 2, Price: 500, Quantity: 1},
	}}
	c.Recalculate()

	assert.Equal(t, int64(2000), c.Items[0].Subtotal)
	assert.Equal(t, int64(500), c.Items[1].Subtotal)
	assert.Equal(t, int64(2500), c.Total)
}

func TestCartFind(t *testing.T) {
	c := Cart{Items: []CartItem{{MenuItemID: 7}, {MenuItemID: 9}}}
	assert.Equal(t, 0, c.Find(7))
	assert.Equal(t, 1, c.Find(9))
	assert.Equal(t, -1, c.Find(42))
}
