package pages

import (
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/handling"
	"revorz_storefront/storefront"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// lookupPage resolves the page view named in the path for the requesting session.
// It writes the error response itself and returns false when there is none.
func (prm *PageRoutesManager) lookupPage(w http.ResponseWriter, r *http.Request) (string, *storefront.Page, bool) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return "", nil, false
	}

	id := chi.URLParam(r, "id")
	page, err := prm.pageService.Get(id, accessor)
	if err != nil {
		handling.HandleError(err, "Failed to look up page view", prm.logger, w)
		return "", nil, false
	}
	return id, page, true
}

func (prm *PageRoutesManager) OpenPage(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	ui := &responseUI{}
	id, page, err := prm.pageService.Open(r.Context(), accessor, ui)
	if err != nil {
		handling.HandleError(err, "Failed to open page view", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.page.opened"),
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}

// GetPage re-reads the state other tabs may have changed and returns the page state
func (prm *PageRoutesManager) GetPage(w http.ResponseWriter, r *http.Request) {
	id, page, ok := prm.lookupPage(w, r)
	if !ok {
		return
	}

	ui := &responseUI{}
	if err := page.Refresh(r.Context(), ui); err != nil {
		handling.HandleError(err, "Failed to refresh page view", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(ui.response(id, page)),
		gecho.Send(),
	)
}
