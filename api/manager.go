package api

import (
	"revorz_storefront/api/auth"
	"revorz_storefront/api/cart"
	"revorz_storefront/api/debug"
	"revorz_storefront/api/health"
	"revorz_storefront/api/listing"
	"revorz_storefront/api/middleware"
	"revorz_storefront/api/newsletter"
	"revorz_storefront/api/pages"
	"revorz_storefront/api/products"
	"revorz_storefront/api/theme"
	"revorz_storefront/services"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes    *products.ProductRoutesManager
	pageRoutes       *pages.PageRoutesManager
	listingRoutes    *listing.ListingRoutesManager
	cartRoutes       *cart.CartRoutesManager
	authRoutes       *auth.AuthRoutesManager
	themeRoutes      *theme.ThemeRoutesManager
	newsletterRoutes *newsletter.NewsletterRoutesManager
	healthRoutes     *health.HealthRoutesManager
	debugRoutes      *debug.DebugRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		productRoutes:    products.NewProductRoutesManager(logger, sm.ProductService),
		pageRoutes:       pages.NewPageRoutesManager(logger, sm.PageService, sm.EmailService, mw),
		listingRoutes:    listing.NewListingRoutesManager(logger, sm.PreferenceService, mw),
		cartRoutes:       cart.NewCartRoutesManager(logger, sm.CartService, sm.AuthService, cfg.Storefront, mw),
		authRoutes:       auth.NewAuthRoutesManager(logger, sm.AuthService, mw),
		themeRoutes:      theme.NewThemeRoutesManager(logger, sm.PreferenceService, mw),
		newsletterRoutes: newsletter.NewNewsletterRoutesManager(logger, sm.EmailService),
		healthRoutes:     health.NewHealthRoutesManager(sm.HealthService),
		debugRoutes:      debug.NewDebugRoutesManager(logger, sm.CacheService, sm.PageService, mw),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.pageRoutes.RegisterRoutes(r)
	rm.listingRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.themeRoutes.RegisterRoutes(r)
	rm.newsletterRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
