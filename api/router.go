package api

import (
	"net/http"
	"revorz_storefront/api/middleware"
	"revorz_storefront/config"
	"revorz_storefront/services"
	"revorz_storefront/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App(cfg *structs.Config, sm *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(1 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(middleware.MetricsMiddleware)
	r.Use(mw.SetupLoggerMiddleware())

	// CORS (must be before identity cookies are issued)
	r.Use(mw.SetupCORS().Handler)

	r.Use(mw.RateLimitMiddleware())

	// Register all routes
	NewRouterManager(standardLogger, cfg, sm, mw).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the Revorz storefront API"),
			gecho.Send(),
		)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
