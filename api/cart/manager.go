package cart

import (
	"revorz_storefront/api/middleware"
	"revorz_storefront/services"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger      *gecho.Logger
	cartService *services.CartService
	authService *services.AuthService
	cfg         *structs.StorefrontConfig
	mw          *middleware.Middleware
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	authService *services.AuthService,
	cfg *structs.StorefrontConfig,
	mw *middleware.Middleware,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:      logger,
		cartService: cartService,
		authService: authService,
		cfg:         cfg,
		mw:          mw,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(crm.mw.Identity)

		r.Get("/", crm.GetCart)
		r.Delete("/", crm.ClearCart)
		r.Get("/indicator", crm.GetIndicator)
		r.Get("/go", crm.GoToCart)
	})
}
