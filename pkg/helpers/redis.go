package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient builds a Redis client. Callers may receive nil when addr
// is empty; everything that takes the client tolerates nil and fails open.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
