package theme

import (
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/handling"

	"github.com/MonkyMars/gecho"
)

func (trm *ThemeRoutesManager) GetTheme(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	state, err := trm.preferenceService.Theme(r.Context(), accessor)
	if err != nil {
		handling.HandleError(err, "Failed to read theme", trm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(state),
		gecho.Send(),
	)
}

func (trm *ThemeRoutesManager) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	state, err := trm.preferenceService.ToggleTheme(r.Context(), accessor)
	if err != nil {
		handling.HandleError(err, "Failed to toggle theme", trm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(state),
		gecho.Send(),
	)
}
