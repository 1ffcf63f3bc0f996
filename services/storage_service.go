package services

import (
	"context"
	"errors"
	"fmt"
	"revorz_storefront/database"
	"revorz_storefront/storage"
	"revorz_storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// BackendDeps are the connections a storage driver may need
type BackendDeps struct {
	Redis *redis.Client
	DB    *database.DB
}

// OpenBackend builds the backend of one scope. ttl applies to redis only.
func OpenBackend(driver, prefix string, ttl time.Duration, deps BackendDeps) (storage.Backend, error) {
	switch driver {
	case DriverMemory:
		return storage.NewMemoryBackend(), nil
	case DriverRedis:
		if deps.Redis == nil {
			return nil, fmt.Errorf("%s driver needs a redis client", driver)
		}
		return storage.NewRedisBackend(deps.Redis, prefix, ttl), nil
	case DriverPostgres:
		if deps.DB == nil {
			return nil, fmt.Errorf("%s driver needs a database", driver)
		}
		return storage.NewPostgresBackend(deps.DB), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

type backendHealth struct {
	Driver         string    `json:"driver"`
	Connected      bool      `json:"connected"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	LastChecked    time.Time `json:"last_checked"`
	Error          string    `json:"error,omitempty"`
}

type storageHealthStatus struct {
	Session    backendHealth `json:"session"`
	Persistent backendHealth `json:"persistent"`
}

func (s storageHealthStatus) Healthy() bool {
	return s.Session.Connected && s.Persistent.Connected
}

// StorageService binds requests to the session and persistent backends
type StorageService struct {
	logger           *gecho.Logger
	session          storage.Backend
	persistent       storage.Backend
	sessionDriver    string
	persistentDriver string
}

func NewStorageService(logger *gecho.Logger, cfg *structs.StorageConfig, session, persistent storage.Backend) *StorageService {
	return &StorageService{
		logger:           logger,
		session:          session,
		persistent:       persistent,
		sessionDriver:    cfg.SessionDriver,
		persistentDriver: cfg.PersistentDriver,
	}
}

// Accessor returns the accessor of one browser session within one profile
func (ss *StorageService) Accessor(sessionID, profileID string) *storage.Accessor {
	return storage.NewAccessor(ss.session, sessionID, ss.persistent, profileID).WithLogger(ss.logger)
}

// ProfileAccessor reaches the persistent values of a profile outside of any browser session
func (ss *StorageService) ProfileAccessor(profileID string) *storage.Accessor {
	return ss.Accessor("", profileID)
}

func (ss *StorageService) Health(ctx context.Context) storageHealthStatus {
	return storageHealthStatus{
		Session:    ss.ping(ctx, ss.sessionDriver, ss.session),
		Persistent: ss.ping(ctx, ss.persistentDriver, ss.persistent),
	}
}

func (ss *StorageService) ping(ctx context.Context, driver string, backend storage.Backend) backendHealth {
	start := time.Now()
	err := backend.Ping(ctx)

	status := backendHealth{
		Driver:         driver,
		Connected:      err == nil,
		ResponseTimeMs: time.Since(start).Milliseconds(),
		LastChecked:    time.Now(),
	}
	if err != nil {
		status.Error = err.Error()
		ss.logger.Error("Storage health check failed", gecho.Field("driver", driver), gecho.Field("error", err))
	}
	return status
}
