package middleware

import (
	"context"
	"net/http"
	"revorz_storefront/services"
	"revorz_storefront/storage"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing identity data in request context
type contextKey string

const (
	IdentityContextKey contextKey = "identity"
	AccessorContextKey contextKey = "accessor"
)

// Identity resolves the profile and session cookies of the browser and binds the
// storage namespaces they name to the request
func (mw *Middleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := mw.identityService.Resolve(w, r)
		if err != nil {
			mw.logger.Error("Failed to resolve identity", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("error.identity.unavailable"), gecho.Send())
			return
		}

		accessor := mw.storageService.Accessor(identity.SessionID, identity.ProfileID)

		ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
		ctx = context.WithValue(ctx, AccessorContextKey, accessor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccessorFromContext returns the storage accessor bound by Identity
func GetAccessorFromContext(ctx context.Context) (*storage.Accessor, bool) {
	accessor, ok := ctx.Value(AccessorContextKey).(*storage.Accessor)
	return accessor, ok
}

func GetIdentityFromContext(ctx context.Context) (services.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(services.Identity)
	return identity, ok
}
