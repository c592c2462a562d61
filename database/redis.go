package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes and returns a Redis client for the session
// cart snapshot store. An unreachable Redis is not fatal: the snapshot
// store degrades like every other remote dependency, so the connection is
// only probed and the result logged.
func NewRedisClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unreachable, cart snapshots disabled: %v", err)
	}
	return client
}
