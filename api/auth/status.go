package auth

import (
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/handling"

	"github.com/MonkyMars/gecho"
)

// HandleStatus returns the login flag and the label of the login/account button
func (arm *AuthRoutesManager) HandleStatus(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	status, err := arm.authService.Status(r.Context(), accessor)
	if err != nil {
		handling.HandleError(err, "Failed to read login status", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}
