package theme

import (
	"revorz_storefront/api/middleware"
	"revorz_storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ThemeRoutesManager struct {
	logger            *gecho.Logger
	preferenceService *services.PreferenceService
	mw                *middleware.Middleware
}

func NewThemeRoutesManager(logger *gecho.Logger, preferenceService *services.PreferenceService, mw *middleware.Middleware) *ThemeRoutesManager {
	return &ThemeRoutesManager{
		logger:            logger,
		preferenceService: preferenceService,
		mw:                mw,
	}
}

func (trm *ThemeRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/theme", func(r chi.Router) {
		r.Use(trm.mw.Identity)
		r.Get("/", trm.GetTheme)
		r.Post("/toggle", trm.ToggleTheme)
	})
}
