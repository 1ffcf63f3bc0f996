package debug

import (
	"net/http"
	"revorz_storefront/api/middleware"

	"github.com/MonkyMars/gecho"
)

// GetRateLimitStatus shows the caller's counter for the endpoint named by the path and method query parameters
func (drm *DebugRoutesManager) GetRateLimitStatus(w http.ResponseWriter, r *http.Request) {
	if drm.cacheService == nil {
		gecho.ServiceUnavailable(w, gecho.WithMessage("error.cache.disabled"), gecho.Send())
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		gecho.BadRequest(w, gecho.WithMessage("error.request.missingPath"), gecho.Send())
		return
	}
	method := r.URL.Query().Get("method")
	if method == "" {
		method = http.MethodGet
	}

	endpoint := middleware.NormalizeEndpoint(method, path)
	status, err := drm.cacheService.GetRateLimitStatus(r.Context(), middleware.ClientIP(r), endpoint)
	if err != nil {
		drm.logger.Error("Failed to read rate limit status", gecho.Field("error", err))
		gecho.ServiceUnavailable(w, gecho.WithMessage("error.cache.unavailable"), gecho.Send())
		return
	}
	status["endpoint"] = endpoint

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}

func (drm *DebugRoutesManager) SweepPages(w http.ResponseWriter, r *http.Request) {
	removed := drm.pageService.Sweep()

	gecho.Success(w,
		gecho.WithMessage("success.pages.swept"),
		gecho.WithData(map[string]int{
			"removed": removed,
			"open":    drm.pageService.Count(),
		}),
		gecho.Send(),
	)
}

// GetIdentity shows the namespaces the request's cookies resolve to
func (drm *DebugRoutesManager) GetIdentity(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("error.identity.missing"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(identity),
		gecho.Send(),
	)
}
