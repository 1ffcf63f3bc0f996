package services

import (
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	StorageService    *StorageService
	CacheService      *CacheService
	IdentityService   *IdentityService
	AuthService       *AuthService
	PageService       *PageService
	ProductService    *ProductService
	CartService       *CartService
	PreferenceService *PreferenceService
	EmailService      *EmailService
	HealthService     *HealthService
}

// NewServiceManager wires the services over already opened storage. cache may be nil
// when no backend uses Redis; rate limiting is then skipped.
func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, storageService *StorageService, cache *CacheService) *ServiceManager {
	destinations := Destinations(cfg.Storefront)

	pageService := NewPageService(logger, cfg.Storefront)

	return &ServiceManager{
		StorageService:    storageService,
		CacheService:      cache,
		IdentityService:   NewIdentityService(logger, cfg),
		AuthService:       NewAuthService(logger, destinations),
		PageService:       pageService,
		ProductService:    NewProductService(logger, cfg.Storefront),
		CartService:       NewCartService(logger, storageService, destinations),
		PreferenceService: NewPreferenceService(logger, destinations),
		EmailService:      NewEmailService(logger, cfg.Email),
		HealthService:     NewHealthService(logger, storageService, pageService),
	}
}
