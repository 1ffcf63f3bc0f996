package services

import (
	"revorz_storefront/storefront"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

// ProductService describes the product the storefront page sells
type ProductService struct {
	logger *gecho.Logger
	cfg    *structs.StorefrontConfig
}

func NewProductService(logger *gecho.Logger, cfg *structs.StorefrontConfig) *ProductService {
	return &ProductService{logger: logger, cfg: cfg}
}

// Product returns the configured product with its normalized base price. A base price
// that does not normalize is shown as zero.
func (ps *ProductService) Product() structs.ProductInfo {
	units, ok := storefront.NormalizePrice(ps.cfg.BasePrice)
	if !ok {
		ps.logger.Warn("Configured base price is not a price", gecho.Field("base_price", ps.cfg.BasePrice))
	}

	return structs.ProductInfo{
		Name:         ps.cfg.ProductName,
		UnitPrice:    units,
		DisplayPrice: storefront.FormatPrice(units, ps.cfg.PriceSuffix),
		Options:      structs.DefaultColorOptions(),
		DefaultColor: structs.ColorWhite,
	}
}
