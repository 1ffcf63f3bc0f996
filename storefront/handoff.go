package storefront

import (
	"context"
	"revorz_storefront/storage"
	"revorz_storefront/structs"
)

// Handoff passes a product chosen on a listing page to the detail page through
// the session store.
type Handoff struct {
	accessor    *storage.Accessor
	productPage string
}

func NewHandoff(accessor *storage.Accessor, productPage string) *Handoff {
	return &Handoff{accessor: accessor, productPage: productPage}
}

// Publish stores the selection and returns the navigation to the detail page
func (h *Handoff) Publish(ctx context.Context, p structs.PendingSelection) (structs.Navigation, error) {
	if err := PendingSelectionKey.Save(ctx, h.accessor, p); err != nil {
		return structs.Navigation{}, err
	}
	return structs.Navigation{Target: h.productPage}, nil
}

// ConsumeIfPresent returns the pending selection once and deletes it, so going
// back to the detail page does not replay it.
func (h *Handoff) ConsumeIfPresent(ctx context.Context) (structs.PendingSelection, bool, error) {
	return PendingSelectionKey.Take(ctx, h.accessor)
}
