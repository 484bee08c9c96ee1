package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dare/enterprisehub/internal/config"
	"dare/enterprisehub/internal/logging"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

// RedisCacheService implements CacheInterface on Redis strings.
type RedisCacheService struct {
	client *redis.Client
}

var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisClient builds a client from config without connecting.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
}

// NewRedisCacheService wraps client and verifies the connection.
func NewRedisCacheService(client *redis.Client) (*RedisCacheService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisCacheService{client: client}, nil
}

func (r *RedisCacheService) Set(key, payload string, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logging.Warn("Redis cache: set failed", "key", key, "error", err)
	}
}

func (r *RedisCacheService) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	payload, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		logging.Warn("Redis cache: get failed", "key", key, "error", err)
		return "", false
	}
	return payload, true
}

// Delete removes all keys in a single DEL round trip.
func (r *RedisCacheService) Delete(keys ...string) {
	if len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		logging.Warn("Redis cache: delete failed", "keys", keys, "error", err)
	}
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
