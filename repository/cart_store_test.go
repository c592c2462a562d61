package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// The snapshot store must follow the same degrade policy as every remote
// dependency: an unreachable Redis reads as an empty snapshot and failed
// writes report false, nothing panics.
func TestCartStore_DegradesWhenRedisUnreachable(t *testing.T) {
	dead := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1", // nothing listens here
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	store := NewCartStore(dead, time.Hour, zap.NewNop())
	ctx := context.Background()

	items := store.Load(ctx, 1)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	saved := store.Save(ctx, 1, []models.CartItem{
		{ProductID: 25, Name: "Pikachu", UnitPrice: 100, Quantity: 2, Stock: 10},
	})
	assert.False(t, saved)

	assert.False(t, store.Delete(ctx, 1))
}
