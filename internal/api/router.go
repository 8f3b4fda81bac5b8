package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured. It receives
// handler instances with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Applies single-origin CORS to the /api group, including OPTIONS
//     preflight on any /api/* path.
//   - Adds request timeout handling (30 seconds; range queries may wait
//     on a cold upstream fetch, which alone is allowed 15 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API routes (/api).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered
//     in app.InitializeApp().
func NewRouter(handler *Handler, orders *OrdersHandler, corsOrigin string) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API ──────────────────────────────────────
	apiGroup := router.Group("/api", middleware.CORS(corsOrigin))
	{
		apiGroup.GET("/yields/treasury", handler.GetTreasuryYields)
		apiGroup.GET("/orders", orders.ListOrders)
		apiGroup.POST("/orders", orders.CreateOrder)

		// CORS preflight for any /api path; the CORS middleware
		// answers OPTIONS with 204 before this no-op handler runs.
		apiGroup.OPTIONS("/*any", func(c *gin.Context) {})
	}

	return router
}
