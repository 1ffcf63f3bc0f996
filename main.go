package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"revorz_storefront/api"
	"revorz_storefront/config"
	"revorz_storefront/database"
	"revorz_storefront/services"
	"revorz_storefront/structs"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const (
	sessionKeyPrefix    = "revorz:session"
	persistentKeyPrefix = "revorz:persistent"
	pageSweepInterval   = time.Minute
	shutdownTimeout     = 10 * time.Second
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Graceful shutdown handler initialized")

	if err := run(ctx); err != nil {
		logger.Fatal("Server stopped with error", gecho.Field("error", err))
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context) error {
	deps := services.BackendDeps{}

	var cache *services.CacheService
	if usesDriver(services.DriverRedis) {
		cache = services.NewCacheService(logger, cfg)
		defer cache.Close()
		deps.Redis = cache.Client()
	}

	if usesDriver(services.DriverPostgres) {
		db, err := database.Connect(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		deps.DB = db
	}

	session, err := services.OpenBackend(cfg.Storage.SessionDriver, sessionKeyPrefix, cfg.Storage.SessionTTL, deps)
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}
	persistent, err := services.OpenBackend(cfg.Storage.PersistentDriver, persistentKeyPrefix, 0, deps)
	if err != nil {
		return fmt.Errorf("failed to open persistent storage: %w", err)
	}
	logger.Info("Storage opened",
		gecho.Field("session_driver", cfg.Storage.SessionDriver),
		gecho.Field("persistent_driver", cfg.Storage.PersistentDriver),
		gecho.Field("session_ttl", cfg.Storage.SessionTTL.String()),
	)

	storageService := services.NewStorageService(logger, cfg.Storage, session, persistent)
	sm := services.NewServiceManager(logger, cfg, storageService, cache)

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(cfg, sm),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sm.PageService.Run(gctx, pageSweepInterval)
		return nil
	})

	if len(cfg.Checkout.Brokers) > 0 {
		consumer := services.NewCheckoutConsumer(logger, cfg.Checkout, sm.CartService)
		g.Go(func() error {
			defer consumer.Close()
			consumer.Run(gctx)
			return nil
		})
	} else {
		logger.Info("No checkout brokers configured, carts are not cleared after checkout")
	}

	g.Go(func() error {
		logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func usesDriver(driver string) bool {
	return cfg.Storage.SessionDriver == driver || cfg.Storage.PersistentDriver == driver
}
