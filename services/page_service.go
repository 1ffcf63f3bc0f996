package services

import (
	"context"
	"fmt"
	"revorz_storefront/lib"
	"revorz_storefront/storage"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/oklog/ulid/v2"
)

var ErrPageNotFound = fmt.Errorf("page view %w", lib.ErrNotFound)

const (
	MaxPagesPerSession = 16
	MaxPages           = 10000
)

type pageView struct {
	page      *storefront.Page
	sessionID string
	profileID string
	lastSeen  time.Time
}

// PageService keeps the open product page views. A view belongs to the browser
// session that opened it and expires after being idle. Opening a view past the
// per-session or total limit evicts the least recently used one.
type PageService struct {
	logger        *gecho.Logger
	options       storefront.PageOptions
	idleTimeout   time.Duration
	now           func() time.Time
	maxPerSession int
	maxPages      int

	mu    sync.Mutex
	pages map[string]*pageView
}

func NewPageService(logger *gecho.Logger, cfg *structs.StorefrontConfig) *PageService {
	return &PageService{
		logger: logger,
		options: storefront.PageOptions{
			ProductName:  cfg.ProductName,
			BasePrice:    cfg.BasePrice,
			PriceSuffix:  cfg.PriceSuffix,
			ColorOptions: structs.DefaultColorOptions(),
			Destinations: Destinations(cfg),
		},
		idleTimeout:   cfg.PageIdleTimeout,
		now:           time.Now,
		maxPerSession: MaxPagesPerSession,
		maxPages:      MaxPages,
		pages:         make(map[string]*pageView),
	}
}

// Destinations maps the configured page names to navigation targets
func Destinations(cfg *structs.StorefrontConfig) storefront.Destinations {
	return storefront.Destinations{
		Login:   cfg.LoginPage,
		Cart:    cfg.CartPage,
		Product: cfg.ProductPage,
	}
}

// Open creates and initializes a page view
func (ps *PageService) Open(ctx context.Context, a *storage.Accessor, ui storefront.UI) (string, *storefront.Page, error) {
	opts := ps.options
	opts.Clock = ps.now

	page := storefront.NewPage(a, opts)
	if err := page.Init(ctx, ui); err != nil {
		return "", nil, err
	}

	id := ulid.Make().String()

	ps.mu.Lock()
	sessionID := a.SessionID()
	ps.evictLocked(ps.maxPerSession, func(v *pageView) bool { return v.sessionID == sessionID })
	ps.evictLocked(ps.maxPages, func(*pageView) bool { return true })
	ps.pages[id] = &pageView{
		page:      page,
		sessionID: a.SessionID(),
		profileID: a.ProfileID(),
		lastSeen:  ps.now(),
	}
	ps.mu.Unlock()

	ps.logger.Debug("Page view opened", gecho.Field("page_id", id), gecho.Field("profile_id", a.ProfileID()))
	return id, page, nil
}

// evictLocked drops the least recently seen matching view while limit or more match
func (ps *PageService) evictLocked(limit int, match func(*pageView) bool) {
	for {
		count := 0
		var oldestID string
		var oldest *pageView
		for id, view := range ps.pages {
			if !match(view) {
				continue
			}
			count++
			if oldest == nil || view.lastSeen.Before(oldest.lastSeen) ||
				(view.lastSeen.Equal(oldest.lastSeen) && id < oldestID) {
				oldestID, oldest = id, view
			}
		}
		if count < limit || oldest == nil {
			return
		}

		delete(ps.pages, oldestID)
		ps.logger.Debug("Evicted page view", gecho.Field("page_id", oldestID), gecho.Field("session_id", oldest.sessionID))
	}
}

// Get returns the page view id if it belongs to the session behind a
func (ps *PageService) Get(id string, a *storage.Accessor) (*storefront.Page, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	view, ok := ps.pages[id]
	if !ok || view.sessionID != a.SessionID() || view.profileID != a.ProfileID() {
		return nil, ErrPageNotFound
	}

	now := ps.now()
	if now.Sub(view.lastSeen) > ps.idleTimeout {
		delete(ps.pages, id)
		return nil, ErrPageNotFound
	}

	view.lastSeen = now
	return view.page, nil
}

func (ps *PageService) Count() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	return len(ps.pages)
}

// Sweep drops idle page views and returns how many were dropped
func (ps *PageService) Sweep() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	now := ps.now()
	dropped := 0
	for id, view := range ps.pages {
		if now.Sub(view.lastSeen) > ps.idleTimeout {
			delete(ps.pages, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps on every interval until ctx is done
func (ps *PageService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := ps.Sweep(); n > 0 {
				ps.logger.Debug("Swept idle page views", gecho.Field("count", n))
			}
		}
	}
}
