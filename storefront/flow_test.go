package storefront

import (
	"context"
	"revorz_storefront/storage"
	"revorz_storefront/structs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	ctx := context.Background()
	g := NewGate(newTestAccessor(), DefaultDestinations())

	loggedIn, err := g.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	target, err := g.GoToCartOrLogin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "login.html", target)

	require.NoError(t, g.LogIn(ctx))
	target, err = g.GoToCartOrLogin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cart.html", target)
	assert.NoError(t, g.RequireLogin(ctx, func() { t.Fatal("onFail called while logged in") }))

	require.NoError(t, g.LogOut(ctx))
	assert.ErrorIs(t, g.RequireLogin(ctx, nil), ErrLoginRequired)
}

func TestGate_AnyNonEmptyFlagIsLoggedIn(t *testing.T) {
	ctx := context.Background()
	a := newTestAccessor()
	require.NoError(t, a.Set(ctx, storage.Session, LoggedInKey.Name, "yes"))

	loggedIn, err := NewGate(a, DefaultDestinations()).IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)
}

func TestLoginLabel(t *testing.T) {
	assert.Equal(t, "Akun Saya", LoginLabel(true))
	assert.Equal(t, "Login", LoginLabel(false))
}

func TestHandoff_OneShot(t *testing.T) {
	ctx := context.Background()
	h := NewHandoff(newTestAccessor(), "product.html")

	nav, err := h.Publish(ctx, structs.PendingSelection{Name: "Band", Price: "50000", Image: "band-black.png"})
	require.NoError(t, err)
	assert.Equal(t, "product.html", nav.Target)

	p, ok, err := h.ConsumeIfPresent(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Band", p.Name)

	_, ok, err = h.ConsumeIfPresent(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTheme_DefaultsToDark(t *testing.T) {
	ctx := context.Background()
	a := newTestAccessor()
	theme := NewTheme(a)

	state, err := theme.Load(ctx)
	require.NoError(t, err)
	assert.True(t, state.Dark)
	assert.Equal(t, "☀️", state.Icon)

	state, err = theme.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, state.Dark)
	assert.Equal(t, ThemeLight, state.Mode)
	assert.Equal(t, "🌙", state.Icon)

	raw, ok, err := a.Get(ctx, storage.Persistent, ThemeKey.Name)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", raw)

	state, err = theme.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, state.Dark)
}

func TestTheme_UnknownValueIsDark(t *testing.T) {
	ctx := context.Background()
	a := newTestAccessor()
	require.NoError(t, a.Set(ctx, storage.Persistent, ThemeKey.Name, "sepia"))

	state, err := NewTheme(a).Load(ctx)
	require.NoError(t, err)
	assert.True(t, state.Dark)
}

func TestBoard_ReplacesAndExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	var b Board

	_, ok := b.Visible(now)
	assert.False(t, ok)

	first := NewNotification(structs.NotificationInfo, "first", now)
	b.Show(first)
	second := NewNotification(structs.NotificationError, "second", now.Add(time.Second))
	b.Show(second)

	n, ok := b.Visible(now.Add(2 * time.Second))
	require.True(t, ok)
	assert.Equal(t, "second", n.Message)
	assert.Equal(t, "#ef4444", n.Color)
	assert.Equal(t, int64(3000), n.DismissAfterMs)

	_, ok = b.Visible(now.Add(4 * time.Second))
	assert.False(t, ok)
}

func TestCountdown_Text(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCountdown(start)

	assert.Equal(t, "5 hari 12 jam 0 menit", c.Text(start))
	assert.Equal(t, "5 hari 11 jam 59 menit", c.Text(start.Add(time.Minute)))
	assert.Equal(t, "0 hari 0 jam 0 menit", c.Text(c.End()))
	assert.Equal(t, "Penawaran Berakhir", c.Text(c.End().Add(time.Second)))
}

func TestCountdown_RunStopsOnCancel(t *testing.T) {
	start := time.Now()
	c := NewCountdown(start)
	ctx, cancel := context.WithCancel(context.Background())

	ticks := make(chan string, 16)
	done := make(chan struct{})
	go func() {
		c.Run(ctx, 5*time.Millisecond, func() time.Time { return start }, func(s string) {
			select {
			case ticks <- s:
			default:
			}
		})
		close(done)
	}()

	assert.Equal(t, "5 hari 12 jam 0 menit", <-ticks)
	<-ticks
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown did not stop")
	}
}
