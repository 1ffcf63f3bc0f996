package services

import (
	"context"
	"revorz_storefront/storage"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

// PreferenceService covers the state a shopper sets from any page: the theme and the
// listing choice handed to the product page.
type PreferenceService struct {
	logger       *gecho.Logger
	destinations storefront.Destinations
}

func NewPreferenceService(logger *gecho.Logger, destinations storefront.Destinations) *PreferenceService {
	return &PreferenceService{logger: logger, destinations: destinations}
}

func (ps *PreferenceService) Theme(ctx context.Context, a *storage.Accessor) (storefront.ThemeState, error) {
	return storefront.NewTheme(a).Load(ctx)
}

func (ps *PreferenceService) ToggleTheme(ctx context.Context, a *storage.Accessor) (storefront.ThemeState, error) {
	return storefront.NewTheme(a).Toggle(ctx)
}

// SelectListing hands a listing choice to the product page and returns the navigation to it
func (ps *PreferenceService) SelectListing(ctx context.Context, a *storage.Accessor, req *structs.ListingSelectRequest) (structs.Navigation, error) {
	nav, err := storefront.NewHandoff(a, ps.destinations.Product).Publish(ctx, structs.PendingSelection{
		Name:  req.Product,
		Price: req.Price,
		Image: req.Image,
	})
	if err != nil {
		return structs.Navigation{}, err
	}

	ps.logger.Debug("Listing selection published", gecho.Field("product", req.Product))
	return nav, nil
}
