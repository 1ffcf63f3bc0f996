package debug

import (
	"revorz_storefront/api/middleware"
	"revorz_storefront/config"
	"revorz_storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	logger       *gecho.Logger
	cacheService *services.CacheService
	pageService  *services.PageService
	mw           *middleware.Middleware
}

// NewDebugRoutesManager builds the debug routes. cacheService may be nil.
func NewDebugRoutesManager(logger *gecho.Logger, cacheService *services.CacheService, pageService *services.PageService, mw *middleware.Middleware) *DebugRoutesManager {
	return &DebugRoutesManager{
		logger:       logger,
		cacheService: cacheService,
		pageService:  pageService,
		mw:           mw,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if !config.IsProduction() {
		r.Route("/debug", func(r chi.Router) {
			r.Get("/ratelimit", drm.GetRateLimitStatus)
			r.Post("/pages/sweep", drm.SweepPages)
			r.Group(func(r chi.Router) {
				r.Use(drm.mw.Identity)
				r.Get("/identity", drm.GetIdentity)
			})
		})
	}
}
