package cart

import (
	"errors"
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/handling"
	"revorz_storefront/storefront"

	"github.com/MonkyMars/gecho"
)

func (crm *CartRoutesManager) GetCart(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	summary, err := crm.cartService.Summary(r.Context(), accessor)
	if errors.Is(err, storefront.ErrLoginRequired) {
		handling.HandleLoginRequired(w, crm.cfg.LoginPage)
		return
	}
	if err != nil {
		handling.HandleError(err, "Failed to read cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(summary),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	err := crm.cartService.Clear(r.Context(), accessor)
	if errors.Is(err, storefront.ErrLoginRequired) {
		handling.HandleLoginRequired(w, crm.cfg.LoginPage)
		return
	}
	if err != nil {
		handling.HandleError(err, "Failed to clear cart", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.cleared"),
		gecho.Send(),
	)
}

// GetIndicator returns the cart total and whether the indicator dot is shown
func (crm *CartRoutesManager) GetIndicator(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	indicator, err := crm.cartService.Indicator(r.Context(), accessor)
	if err != nil {
		handling.HandleError(err, "Failed to read cart indicator", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(indicator),
		gecho.Send(),
	)
}

// GoToCart redirects to the cart page, or to the login page when the session is not logged in
func (crm *CartRoutesManager) GoToCart(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	target, err := crm.authService.CartDestination(r.Context(), accessor)
	if err != nil {
		handling.HandleError(err, "Failed to resolve cart destination", crm.logger, w)
		return
	}

	// Targets are opaque page names and are sent as is
	w.Header().Set("Location", target)
	w.WriteHeader(http.StatusSeeOther)
}
