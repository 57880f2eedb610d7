package rest

import (
	"bm/config"
	"bm/di"
	"bm/domain"
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerSettingsRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/settings", getSettingsHandler(container))
	v1.PUT("/settings", saveSettingsHandler(container))
}

func getSettingsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "getSettings")
		}

		settings, err := container.UserSettingsUsecase.GetSettings(c.Request().Context(), user.UserID)
		if err != nil {
			return handleError(c, err, "getSettings")
		}

		return c.JSON(http.StatusOK, settings)
	}
}

func saveSettingsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "saveSettings")
		}

		var req settingsRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		settings := &domain.UserSettings{
			UserID:          user.UserID,
			GithubPAT:       req.GithubPAT,
			FeedbinUsername: req.FeedbinUsername,
			FeedbinPassword: req.FeedbinPassword,
			HNUsername:      req.HNUsername,
		}

		saved, err := container.UserSettingsUsecase.SaveSettings(c.Request().Context(), settings)
		if err != nil {
			return handleError(c, err, "saveSettings")
		}

		return c.JSON(http.StatusOK, saved)
	}
}
