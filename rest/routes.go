package rest

import (
	"bm/config"
	"bm/di"
	middleware_custom "bm/middleware"
	"bm/utils/logger"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first so every log line can be correlated
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early to catch panics
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// 4. CORS for the browser frontends
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8000"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Requested-With"},
		MaxAge:       86400,
	}))

	// 5. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			// Imports talk to remote services and manage their own deadlines
			return strings.HasPrefix(c.Path(), "/v1/import/")
		},
	}))

	// 6. Request metrics
	e.Use(middleware_custom.MetricsMiddleware())

	// 7. Logging middleware
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 8. Compression middleware last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") ||
				strings.Contains(c.Path(), "/metrics")
		},
	}))

	// Unauthenticated operational surface
	registerOperationalRoutes(e, container)

	// Bearer-key authenticated application surface
	v1 := e.Group("/v1", middleware_custom.APIKeyAuth(container.ApiKeyGateway))
	registerLinkRoutes(v1, container, cfg)
	registerImportRoutes(v1, container, cfg)
	registerSettingsRoutes(v1, container, cfg)

	registerAPIRoutes(e, container, cfg)
}
