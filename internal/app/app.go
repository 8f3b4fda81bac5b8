package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/phi-h-nguyen/modernfi-take-home/config"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/api"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/service"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/storage"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/treasury"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres() and creates the
//     orders table if missing.
//   - Builds the treasury fetch pipeline: HTTP fetcher -> year cache.
//     The cache is constructed exactly once here and passed by
//     reference into the service; there is no ambient singleton.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize the order store and its schema
	orders := storage.NewOrdersRepository(db)
	if err := orders.InitSchema(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize orders schema: %w", err)
	}

	// Build the yield pipeline: fetcher -> year cache -> resolver
	fetcher := treasury.NewHTTPFetcher(cfg.Treasury.BaseURL, cfg.Treasury.Timeout)
	cache, err := treasury.NewYearCache(fetcher, cfg.Treasury.CacheSize)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize year cache: %w", err)
	}
	svc := service.NewYieldService(cache)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)
	ordersHandler := api.NewOrdersHandler(orders)

	// Setup Gin router with routes
	router := api.NewRouter(handler, ordersHandler, cfg.Server.CORSOrigin)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
