package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

func newTestAccessor() (*Accessor, *MemoryBackend, *MemoryBackend) {
	session := NewMemoryBackend()
	persistent := NewMemoryBackend()
	return NewAccessor(session, "sess-1", persistent, "prof-1"), session, persistent
}

func TestAccessor_ScopesAreSeparate(t *testing.T) {
	a, session, persistent := newTestAccessor()
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, Session, "k", "session-value"))
	require.NoError(t, a.Set(ctx, Persistent, "k", "persistent-value"))

	v, ok, _ := session.Get(ctx, "sess-1", "k")
	assert.True(t, ok)
	assert.Equal(t, "session-value", v)

	v, ok, _ = persistent.Get(ctx, "prof-1", "k")
	assert.True(t, ok)
	assert.Equal(t, "persistent-value", v)
}

func TestAccessor_UnknownScope(t *testing.T) {
	a, _, _ := newTestAccessor()

	_, _, err := a.Get(context.Background(), Scope(42), "k")
	assert.ErrorIs(t, err, ErrUnknownScope)
}

func TestAccessor_RemoveAbsentKey(t *testing.T) {
	a, _, _ := newTestAccessor()

	assert.NoError(t, a.Remove(context.Background(), Persistent, "missing"))
}

func TestKey_JSONRoundTrip(t *testing.T) {
	a, _, _ := newTestAccessor()
	ctx := context.Background()
	key := Key[[]testItem]{Scope: Persistent, Name: "items", Codec: JSON[[]testItem]()}

	require.NoError(t, key.Save(ctx, a, []testItem{{Name: "watch", Quantity: 2}}))

	items, ok, err := key.Load(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []testItem{{Name: "watch", Quantity: 2}}, items)
}

func TestKey_MalformedIsAbsent(t *testing.T) {
	ctx := context.Background()
	key := Key[[]testItem]{Scope: Persistent, Name: "items", Codec: JSON[[]testItem]()}

	cases := map[string]string{
		"broken json":     `[{"name":"watch",`,
		"wrong shape":     `{"name":"watch"}`,
		"failed validate": `[{"name":"watch","quantity":0}]`,
		"missing name":    `[{"quantity":3}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			a, _, _ := newTestAccessor()
			require.NoError(t, a.Set(ctx, Persistent, "items", raw))

			items, ok, err := key.Load(ctx, a)
			assert.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, items)
		})
	}
}

func TestKey_TakeIsOneShot(t *testing.T) {
	a, _, _ := newTestAccessor()
	ctx := context.Background()
	key := Key[testItem]{Scope: Session, Name: "pending", Codec: JSON[testItem]()}

	require.NoError(t, key.Save(ctx, a, testItem{Name: "watch", Quantity: 1}))

	v, ok, err := key.Take(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "watch", v.Name)

	_, ok, err = key.Take(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKey_TakeRemovesMalformedValue(t *testing.T) {
	a, _, _ := newTestAccessor()
	ctx := context.Background()
	key := Key[testItem]{Scope: Session, Name: "pending", Codec: JSON[testItem]()}

	require.NoError(t, a.Set(ctx, Session, "pending", "not json"))

	_, ok, err := key.Take(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)

	_, present, _ := a.Get(ctx, Session, "pending")
	assert.False(t, present)
}

func TestOneOfCodec(t *testing.T) {
	a, _, _ := newTestAccessor()
	ctx := context.Background()
	key := Key[string]{Scope: Persistent, Name: "theme", Codec: OneOf("dark", "light")}

	assert.Error(t, key.Save(ctx, a, "sepia"))

	require.NoError(t, key.Save(ctx, a, "light"))
	v, ok, err := key.Load(ctx, a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, a.Set(ctx, Persistent, "theme", "sepia"))
	_, ok, err = key.Load(ctx, a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlagCodec(t *testing.T) {
	a, _, _ := newTestAccessor()
	ctx := context.Background()
	key := Key[bool]{Scope: Session, Name: "flag", Codec: Flag()}

	_, ok, _ := key.Load(ctx, a)
	assert.False(t, ok)

	require.NoError(t, key.Save(ctx, a, true))
	v, ok, _ := key.Load(ctx, a)
	assert.True(t, ok)
	assert.True(t, v)

	require.NoError(t, a.Set(ctx, Session, "flag", "yes"))
	v, _, _ = key.Load(ctx, a)
	assert.True(t, v)

	assert.Error(t, key.Save(ctx, a, false))
}
