package listing

import (
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/handling"
	"revorz_storefront/lib"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
)

// SelectListing stores the chosen listing for the product page and answers with the navigation to it
func (lrm *ListingRoutesManager) SelectListing(w http.ResponseWriter, r *http.Request) {
	accessor, ok := middleware.GetAccessorFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ListingSelectRequest](r)
	if err != nil {
		handling.HandleBodyError(err, w)
		return
	}

	nav, err := lrm.preferenceService.SelectListing(r.Context(), accessor, body)
	if err != nil {
		handling.HandleError(err, "Failed to publish listing selection", lrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(nav),
		gecho.Send(),
	)
}
