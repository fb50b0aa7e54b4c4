package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/connect237/busconnect/config"
	"github.com/connect237/busconnect/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

// GetRoutes returns a cached search result, or nil on a miss.
func (c *RedisCache) GetRoutes(ctx context.Context, origin, destination, class string) ([]domain.Route, error) {
	data, err := c.client.Get(ctx, searchKey(origin, destination, class)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var routes []domain.Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (c *RedisCache) SetRoutes(ctx context.Context, origin, destination, class string, routes []domain.Route) error {
	payload, err := json.Marshal(routes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(origin, destination, class), payload, c.searchTTL).Err()
}

// ReserveReference claims a freshly generated booking or tracking reference
// for the duration of the insert. Returns false when another request already
// holds the same code, in which case the caller generates a new one.
func (c *RedisCache) ReserveReference(ctx context.Context, reference string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, referenceKey(reference), "reserved", ttl).Result()
}

func (c *RedisCache) ReleaseReference(ctx context.Context, reference string) error {
	return c.client.Del(ctx, referenceKey(reference)).Err()
}

func searchKey(origin, destination, class string) string {
	return fmt.Sprintf("cache:search:%s:%s:%s", origin, destination, class)
}

func referenceKey(reference string) string {
	return fmt.Sprintf("lock:reference:%s", reference)
}
