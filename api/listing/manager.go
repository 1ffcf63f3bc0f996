package listing

import (
	"revorz_storefront/api/middleware"
	"revorz_storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ListingRoutesManager struct {
	logger            *gecho.Logger
	preferenceService *services.PreferenceService
	mw                *middleware.Middleware
}

func NewListingRoutesManager(logger *gecho.Logger, preferenceService *services.PreferenceService, mw *middleware.Middleware) *ListingRoutesManager {
	return &ListingRoutesManager{
		logger:            logger,
		preferenceService: preferenceService,
		mw:                mw,
	}
}

func (lrm *ListingRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/listing", func(r chi.Router) {
		r.Use(lrm.mw.Identity)
		r.Post("/select", lrm.SelectListing)
	})
}
