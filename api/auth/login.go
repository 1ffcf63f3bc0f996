package auth

import (
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/handling"

	"github.com/MonkyMars/gecho"
)

// HandleLogin sets the session login flag. The login page has no credential check.
func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	status, err := arm.authService.LogIn(r.Context(), accessor)
	if err != nil {
		handling.HandleError(err, "Failed to log in", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedIn"),
		gecho.WithData(status),
		gecho.Send(),
	)
}
