package newsletter

import (
	"revorz_storefront/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type NewsletterRoutesManager struct {
	logger       *gecho.Logger
	emailService *services.EmailService
}

func NewNewsletterRoutesManager(logger *gecho.Logger, emailService *services.EmailService) *NewsletterRoutesManager {
	return &NewsletterRoutesManager{
		logger:       logger,
		emailService: emailService,
	}
}

func (nrm *NewsletterRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/newsletter", nrm.Subscribe)
}
