package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is the per-browsing-session state carried between menu browsing
// and checkout. Keyed to one restaurant+table context; binding a different
// context starts a fresh session.
type Session struct {
	RestaurantID uint   `json:"restaurantId"`
	TableID      uint   `json:"tableId"`
	Cart         Cart   `json:"cart"`
	CustomerID   uint   `json:"customerId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
}

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in redis as JSON with a sliding TTL.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

func (s *Store) key(id string) string {
	return "session:" + id
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.Client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Save(ctx context.Context, id string, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.key(id), raw, s.TTL).Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.key(id)).Err()
}
