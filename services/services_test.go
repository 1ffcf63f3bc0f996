package services

import (
	"revorz_storefront/storage"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

func testStorefrontConfig() *structs.StorefrontConfig {
	return &structs.StorefrontConfig{
		ProductName:     "Smart Watch Pro",
		BasePrice:       "75000",
		PriceSuffix:     "J",
		PageIdleTimeout: 30 * time.Minute,
		LoginPage:       "login.html",
		CartPage:        "cart.html",
		ProductPage:     "product.html",
	}
}

func newTestStorageService() *StorageService {
	return NewStorageService(testLogger(), &structs.StorageConfig{
		SessionDriver:    DriverMemory,
		PersistentDriver: DriverMemory,
	}, storage.NewMemoryBackend(), storage.NewMemoryBackend())
}

type nopUI struct{}

func (nopUI) Render(storefront.PageState) {}
func (nopUI) MarkSelected(structs.Color)  {}
func (nopUI) SetIndicator(bool)           {}
func (nopUI) Notify(structs.Notification) {}
func (nopUI) Navigate(structs.Navigation) {}

var _ storefront.UI = nopUI{}
