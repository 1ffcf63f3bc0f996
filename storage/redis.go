package storage

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisRetries = 3

// RedisBackend stores values under "<prefix>:<namespace>:<key>". A non-zero ttl is
// applied on every write, which gives session scoped values a sliding lifetime.
type RedisBackend struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisBackend(client *redis.Client, prefix string, ttl time.Duration) *RedisBackend {
	return &RedisBackend{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisBackend) key(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, namespace, key)
}

func (r *RedisBackend) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	var (
		val   string
		found bool
	)

	err := WithRetry(ctx, func() error {
		v, err := r.client.Get(ctx, r.key(namespace, key)).Result()
		if errors.Is(err, redis.Nil) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		val, found = v, true
		return nil
	}, defaultRedisRetries)
	if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}

	return val, found, nil
}

func (r *RedisBackend) Set(ctx context.Context, namespace, key, value string) error {
	err := WithRetry(ctx, func() error {
		return r.client.Set(ctx, r.key(namespace, key), value, r.ttl).Err()
	}, defaultRedisRetries)
	if err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisBackend) Remove(ctx context.Context, namespace, key string) error {
	err := WithRetry(ctx, func() error {
		return r.client.Del(ctx, r.key(namespace, key)).Err()
	}, defaultRedisRetries)
	if err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// WithRetry executes a Redis operation with exponential backoff and jitter.
// Only network and connection errors are retried.
func WithRetry(ctx context.Context, operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't retry on the last attempt
		if attempt == maxRetries {
			break
		}

		if !IsRetryableRedisError(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff(attempt)):
		}
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// backoff returns 100ms doubling per attempt, capped at 2s, with ±50% jitter
func backoff(attempt int) time.Duration {
	maxBackoff := 2000 // ms
	base := 100        // ms

	b := min(base*(1<<attempt), maxBackoff)

	jitterBytes := make([]byte, 4)
	if _, err := rand.Read(jitterBytes); err != nil {
		return time.Duration(b) * time.Millisecond
	}
	jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))
	jitter = jitter % (b/2 + 1)

	return time.Duration(b/2+jitter) * time.Millisecond
}

// IsRetryableRedisError determines if an error is worth retrying
func IsRetryableRedisError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}
