package handlers

import (
	"net/http"

	"github.com/SscSPs/corebank/cmd/docs"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/middleware"
	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter and posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Core Banking System is running")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("")
	if cfg.ServiceJWTSecret != "" {
		api.Use(middleware.ServiceAuthMiddleware(cfg.ServiceJWTSecret, cfg.JWTIssuer))
	}
	api.Use(middleware.PosthogMiddleware(posthogClient))

	txGroup := api.Group("")
	if rateLimiter != nil {
		txGroup.Use(middleware.RateLimit(rateLimiter))
	}
	RegisterTransactionRoutes(txGroup, services.Transaction, posthogClient)
	RegisterCardRoutes(api, services.Account)
	RegisterHistoryRoutes(api, services.Ledger)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
