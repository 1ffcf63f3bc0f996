package services

import (
	"context"
	"revorz_storefront/storage"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"golang.org/x/sync/singleflight"
)

const indicatorReadTimeout = 5 * time.Second

// CartService serves the cart page and the cart indicator outside of a product page view
type CartService struct {
	logger       *gecho.Logger
	storage      *StorageService
	destinations storefront.Destinations
	indicator    singleflight.Group
}

func NewCartService(logger *gecho.Logger, storageService *StorageService, destinations storefront.Destinations) *CartService {
	return &CartService{
		logger:       logger,
		storage:      storageService,
		destinations: destinations,
	}
}

func (cs *CartService) cart(a *storage.Accessor) (*storefront.Cart, *storefront.Gate) {
	gate := storefront.NewGate(a, cs.destinations)
	return storefront.NewCart(a, gate), gate
}

// Indicator reads the cart total. Concurrent reads for the same profile share one storage read,
// which is detached from any single caller's cancellation.
func (cs *CartService) Indicator(ctx context.Context, a *storage.Accessor) (structs.CartIndicator, error) {
	cart, _ := cs.cart(a)

	ch := cs.indicator.DoChan(a.ProfileID(), func() (any, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), indicatorReadTimeout)
		defer cancel()
		return cart.ReadCartTotal(readCtx)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return structs.CartIndicator{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return structs.CartIndicator{}, res.Err
	}

	total := res.Val.(int)
	return structs.CartIndicator{Total: total, Active: storefront.IndicatorActive(total)}, nil
}

// Summary returns the cart page content; only logged in sessions may read it
func (cs *CartService) Summary(ctx context.Context, a *storage.Accessor) (structs.CartSummary, error) {
	cart, gate := cs.cart(a)
	if err := gate.RequireLogin(ctx, nil); err != nil {
		return structs.CartSummary{}, err
	}
	return cart.Summary(ctx)
}

// Clear empties the cart of a logged in session
func (cs *CartService) Clear(ctx context.Context, a *storage.Accessor) error {
	cart, gate := cs.cart(a)
	if err := gate.RequireLogin(ctx, nil); err != nil {
		return err
	}
	return cart.Clear(ctx)
}

// ClearProfile empties the cart of a profile without a session, as after a completed checkout
func (cs *CartService) ClearProfile(ctx context.Context, profileID string) error {
	cart, _ := cs.cart(cs.storage.ProfileAccessor(profileID))
	if err := cart.Clear(ctx); err != nil {
		return err
	}
	cs.logger.Info("Cleared cart after checkout", gecho.Field("profile_id", profileID))
	return nil
}
