package products

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchProduct handles GET /product with the page defined product and its color options
func (p *ProductRoutesManager) FetchProduct(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(p.productService.Product()),
		gecho.Send(),
	)
}
