package middleware

import (
	"revorz_storefront/services"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	cacheService    *services.CacheService
	identityService *services.IdentityService
	storageService  *services.StorageService
}

// NewMiddleware builds the shared middleware. A nil cacheService disables rate limiting.
func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, sm *services.ServiceManager) *Middleware {
	return &Middleware{
		logger:          logger,
		cfg:             cfg,
		cacheService:    sm.CacheService,
		identityService: sm.IdentityService,
		storageService:  sm.StorageService,
	}
}
