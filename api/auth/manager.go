package auth

import (
	"revorz_storefront/api/middleware"
	"revorz_storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	mw          *middleware.Middleware
}

func NewAuthRoutesManager(logger *gecho.Logger, authService *services.AuthService, mw *middleware.Middleware) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		mw:          mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(arm.mw.Identity)

		r.Get("/status", arm.HandleStatus)
		r.Post("/login", arm.HandleLogin)
		r.Post("/logout", arm.HandleLogout)
	})
}
