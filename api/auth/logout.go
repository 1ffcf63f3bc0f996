package auth

import (
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/handling"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	status, err := arm.authService.LogOut(r.Context(), accessor)
	if err != nil {
		handling.HandleError(err, "Failed to log out", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.auth.loggedOut"),
		gecho.WithData(status),
		gecho.Send(),
	)
}
