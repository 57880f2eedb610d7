package rest

import (
	"bm/di"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func registerOperationalRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	v1 := e.Group("/v1")

	// Health check with database connectivity test
	v1.GET("/health", func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "public, max-age=30")

		response := map[string]string{
			"status": "healthy",
		}

		if container.BmDBRepository != nil {
			if err := container.BmDBRepository.Ping(c.Request().Context()); err != nil {
				response["status"] = "degraded"
				response["database"] = "unreachable"
				return c.JSON(http.StatusServiceUnavailable, response)
			}
			response["database"] = "connected"
		}

		return c.JSON(http.StatusOK, response)
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/robots.txt", func(c echo.Context) error {
		return c.String(http.StatusOK, "User-Agent: *\n")
	})

	e.GET("/.well-known/security.txt", func(c echo.Context) error {
		expires := time.Now().AddDate(1, 0, 0).UTC().Format(time.RFC3339)
		body := fmt.Sprintf("Contact: mailto:security@bm.example.com\nExpires: %s\n", expires)
		return c.String(http.StatusOK, body)
	})
}
