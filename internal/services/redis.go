package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// catalogCacheTTL bounds staleness of cached catalog pages. Bookings created
// in the meantime only affect the availability filter, not pricing.
const catalogCacheTTL = 5 * time.Minute

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// CatalogPageKey builds the cache key for one catalog page.
func CatalogPageKey(limit, offset int, vehicleType, startDate, endDate string) string {
	return fmt.Sprintf("catalog:page:%d:%d:%s:%s:%s", limit, offset, vehicleType, startDate, endDate)
}

// SetCatalogPage caches the JSON payload of a catalog page. A nil client
// (Redis not configured) is a no-op; the catalog never depends on the cache.
func SetCatalogPage(ctx context.Context, key string, payload []byte) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Set(ctx, key, payload, catalogCacheTTL).Err()
}

// GetCatalogPage retrieves a cached catalog page, or ("", false) on miss.
func GetCatalogPage(ctx context.Context, key string) ([]byte, bool) {
	if RedisClient == nil {
		return nil, false
	}
	data, err := RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}
