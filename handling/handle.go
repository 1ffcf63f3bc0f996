package handling

import (
	"errors"
	"net/http"
	"revorz_storefront/lib"
	"revorz_storefront/storefront"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

// HandleError answers with the status the error maps to. Unexpected errors come from
// the storage backends; they are logged and answered with 503.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		return gecho.NotFound(w, gecho.WithMessage("error.page.notFound"), gecho.Send())
	case errors.Is(err, storefront.ErrLoginRequired):
		return HandleLoginRequired(w, storefront.DefaultDestinations().Login)
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.ServiceUnavailable(w, gecho.WithMessage("error.storage.unavailable"), gecho.Send())
}

// HandleLoginRequired answers a gated request with 401 and the navigation to the login page
func HandleLoginRequired(w http.ResponseWriter, loginPage string) error {
	return gecho.Unauthorized(w,
		gecho.WithMessage("error.auth.loginRequired"),
		gecho.WithData(structs.Navigation{
			Target:  loginPage,
			AfterMs: storefront.LoginRedirectDelay.Milliseconds(),
		}),
		gecho.Send(),
	)
}

// HandleBodyError answers a request whose body failed to decode or validate
func HandleBodyError(err error, w http.ResponseWriter) error {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		return gecho.BadRequest(w,
			gecho.WithMessage("error.request.validationFailed"),
			gecho.WithData(ve),
			gecho.Send(),
		)
	}

	return gecho.BadRequest(w,
		gecho.WithMessage("error.request.invalidBody"),
		gecho.WithData(map[string]string{"error": err.Error()}),
		gecho.Send(),
	)
}
