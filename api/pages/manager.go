package pages

import (
	"revorz_storefront/api/middleware"
	"revorz_storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PageRoutesManager struct {
	logger       *gecho.Logger
	pageService  *services.PageService
	emailService *services.EmailService
	mw           *middleware.Middleware
}

func NewPageRoutesManager(
	logger *gecho.Logger,
	pageService *services.PageService,
	emailService *services.EmailService,
	mw *middleware.Middleware,
) *PageRoutesManager {
	return &PageRoutesManager{
		logger:       logger,
		pageService:  pageService,
		emailService: emailService,
		mw:           mw,
	}
}

func (prm *PageRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/pages/product", func(r chi.Router) {
		r.Use(prm.mw.Identity)

		r.Post("/", prm.OpenPage)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", prm.GetPage)
			r.Post("/color", prm.SelectColor)
			r.Post("/color/key", prm.ActivateColorKey)
			r.Post("/quantity", prm.ChangeQuantity)
			r.Post("/cart", prm.AddToCart)
			r.Post("/navigate/cart", prm.GoToCartOrLogin)
			r.Post("/theme/toggle", prm.ToggleTheme)
			r.Post("/newsletter", prm.SubscribeNewsletter)
			r.Get("/countdown", prm.GetCountdown)
			r.Get("/countdown/stream", prm.StreamCountdown)
		})
	})
}
