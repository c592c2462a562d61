package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// CartStore persists a snapshot of the session cart in Redis so an
// interrupted session can be restored on the next launch. The in-memory
// cart stays the source of truth; the store follows the same degrade
// policy as every other remote dependency.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCartStore(client *redis.Client, ttl time.Duration, log *zap.Logger) *CartStore {
	return &CartStore{client: client, ttl: ttl, log: log}
}

func (s *CartStore) key(userID int) string {
	return fmt.Sprintf("cart:user:%d", userID)
}

// Save snapshots the cart items. Failures are logged and reported as false.
func (s *CartStore) Save(ctx context.Context, userID int, items []models.CartItem) bool {
	return guardOK(ctx, s.log, "cartstore.save", func() error {
		data, err := json.Marshal(items)
		if err != nil {
			return err
		}
		return s.client.Set(ctx, s.key(userID), data, s.ttl).Err()
	})
}

// Load returns the stored snapshot, or an empty slice when there is none or
// the store is unreachable.
func (s *CartStore) Load(ctx context.Context, userID int) []models.CartItem {
	return guard(ctx, s.log, "cartstore.load", []models.CartItem{}, func() ([]models.CartItem, error) {
		data, err := s.client.Get(ctx, s.key(userID)).Result()
		if err == redis.Nil {
			return []models.CartItem{}, nil
		}
		if err != nil {
			return nil, err
		}
		var items []models.CartItem
		if err := json.Unmarshal([]byte(data), &items); err != nil {
			return nil, err
		}
		return items, nil
	})
}

// Delete drops the snapshot, typically after a successful checkout.
func (s *CartStore) Delete(ctx context.Context, userID int) bool {
	return guardOK(ctx, s.log, "cartstore.delete", func() error {
		return s.client.Del(ctx, s.key(userID)).Err()
	})
}
