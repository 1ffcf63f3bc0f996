package services

import (
	"context"
	"errors"
	"revorz_storefront/storage"
	"revorz_storefront/structs"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	b, err := OpenBackend(DriverMemory, "s", 0, BackendDeps{})
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryBackend{}, b)

	b, err = OpenBackend(DriverRedis, "s", time.Hour, BackendDeps{Redis: client})
	require.NoError(t, err)
	assert.IsType(t, &storage.RedisBackend{}, b)

	_, err = OpenBackend(DriverRedis, "s", time.Hour, BackendDeps{})
	assert.Error(t, err)

	_, err = OpenBackend(DriverPostgres, "p", 0, BackendDeps{})
	assert.Error(t, err)

	_, err = OpenBackend("sqlite", "p", 0, BackendDeps{})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

type downBackend struct{ storage.MemoryBackend }

func (*downBackend) Ping(context.Context) error { return errors.New("connection refused") }

func TestStorageService_Health(t *testing.T) {
	ss := NewStorageService(testLogger(), &structs.StorageConfig{
		SessionDriver:    DriverMemory,
		PersistentDriver: DriverPostgres,
	}, storage.NewMemoryBackend(), &downBackend{})

	status := ss.Health(context.Background())
	assert.True(t, status.Session.Connected)
	assert.False(t, status.Persistent.Connected)
	assert.Equal(t, DriverPostgres, status.Persistent.Driver)
	assert.Equal(t, "connection refused", status.Persistent.Error)
	assert.False(t, status.Healthy())
}

func TestStorageService_ProfileAccessorSharesPersistentScope(t *testing.T) {
	ctx := context.Background()
	ss := newTestStorageService()

	require.NoError(t, ss.Accessor("sess-1", "prof-1").Set(ctx, storage.Persistent, "k", "v"))

	v, ok, err := ss.ProfileAccessor("prof-1").Get(ctx, storage.Persistent, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
