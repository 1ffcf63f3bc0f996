package services

import (
	"context"
	"fmt"
	"revorz_storefront/storage"
	"revorz_storefront/structs"
	"strconv"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// CacheService owns the shared Redis client used by the storage backends and the rate limiter
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(cfg.Cache),
	}
}

// NewCacheServiceWithClient wraps an existing client, e.g. one pointing at miniredis
func NewCacheServiceWithClient(logger *gecho.Logger, cfg *structs.Config, client *redis.Client) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: client,
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient(cfg *structs.CacheConfig) *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,

			// Connection pool settings
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			PoolTimeout:     cfg.PoolTimeout,
			ConnMaxIdleTime: cfg.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.MaxRetries,
			MinRetryBackoff: cfg.MinRetryBackoff,
			MaxRetryBackoff: cfg.MaxRetryBackoff,
		})
	})
	return redisClient
}

func (cs *CacheService) Client() *redis.Client {
	return cs.client
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if cs.client != nil {
		return cs.client.Close()
	}
	return nil
}

func rateLimitKey(ip, endpoint string) string {
	return fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)
}

// IncrementRateLimit atomically increments a rate limit counter
func (cs *CacheService) IncrementRateLimit(ctx context.Context, ip, endpoint string, ttl time.Duration) (int, error) {
	key := rateLimitKey(ip, endpoint)

	var result int64
	err := storage.WithRetry(ctx, func() error {
		val, err := cs.client.Incr(ctx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Set expiration only on first increment
		if val == 1 {
			return cs.client.Expire(ctx, key, ttl).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// GetRateLimitStatus returns the current count and remaining window of a counter
func (cs *CacheService) GetRateLimitStatus(ctx context.Context, ip, endpoint string) (map[string]any, error) {
	key := rateLimitKey(ip, endpoint)

	var result map[string]any

	err := storage.WithRetry(ctx, func() error {
		val, err := cs.client.Get(ctx, key).Result()
		if err == redis.Nil {
			result = map[string]any{
				"count": 0,
				"ttl":   0,
			}
			return nil
		}
		if err != nil {
			return err
		}

		ttl, err := cs.client.TTL(ctx, key).Result()
		if err != nil {
			return err
		}

		count, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid rate limit value: %w", err)
		}

		result = map[string]any{
			"count": count,
			"ttl":   int(ttl.Seconds()),
		}
		return nil
	}, 3)

	return result, err
}

// Ping tests the Redis connection
func (cs *CacheService) Ping(ctx context.Context) error {
	return storage.WithRetry(ctx, func() error {
		return cs.client.Ping(ctx).Err()
	}, 3)
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
