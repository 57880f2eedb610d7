package rest

import (
	"bm/config"
	"bm/di"
	"bm/middleware"
	"bm/utils/errors"
	"bm/utils/logger"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// registerAPIRoutes wires the JSON screenshot API. It lives outside
// the /v1 group to keep the original /api/{link_id} paths.
func registerAPIRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	api := e.Group("/api", middleware.APIKeyAuth(container.ApiKeyGateway))
	api.GET("/:id", getAPILinkHandler(container))
	api.POST("/:id", attachScreenshotHandler(container))
}

func getAPILinkHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleAPIError(c, err, "getAPILink")
		}

		linkID, ok := parseUUIDParam(c, "id")
		if !ok {
			return apiErrorResponse(c, http.StatusNotFound,
				apiError{Code: string(errors.ErrCodeNotFound), Message: "link not found"})
		}

		link, shots, err := container.AttachScreenshotUsecase.GetLinkWithScreenshots(
			c.Request().Context(), user.UserID, linkID)
		if err != nil {
			return handleAPIError(c, err, "getAPILink")
		}

		return c.JSON(http.StatusOK, newAPILinkResponse(link, shots))
	}
}

func attachScreenshotHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleAPIError(c, err, "attachScreenshot")
		}

		linkID, ok := parseUUIDParam(c, "id")
		if !ok {
			return apiErrorResponse(c, http.StatusNotFound,
				apiError{Code: string(errors.ErrCodeNotFound), Message: "link not found"})
		}

		var req screenshotRequest
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			// The decoder's message tells the caller what was wrong
			// with the body.
			return apiErrorResponse(c, http.StatusBadRequest,
				apiError{Code: string(errors.ErrCodeValidation), Message: err.Error()})
		}
		if req.ScreenshotURL == "" {
			return apiErrorResponse(c, http.StatusBadRequest,
				apiError{Code: string(errors.ErrCodeValidation), Message: "screenshot_url is required"})
		}

		_, created, err := container.AttachScreenshotUsecase.Execute(
			c.Request().Context(), user.UserID, linkID, req.ScreenshotURL)
		if err != nil {
			return handleAPIError(c, err, "attachScreenshot")
		}

		link, shots, err := container.AttachScreenshotUsecase.GetLinkWithScreenshots(
			c.Request().Context(), user.UserID, linkID)
		if err != nil {
			return handleAPIError(c, err, "attachScreenshot")
		}

		status := http.StatusOK
		message := "screenshot already exists"
		if created {
			status = http.StatusCreated
			message = "screenshot added"
		}

		return c.JSON(status, apiDataResponse{
			Data:     newAPILinkResponse(link, shots),
			Messages: []string{message},
		})
	}
}

// handleAPIError renders errors in the /api error-list shape.
func handleAPIError(c echo.Context, err error, operation string) error {
	contextErr := toContextError(c, err, operation)

	logger.Logger.Error("API handler error",
		"error", contextErr.Error(),
		"error_code", contextErr.Code,
		"operation", contextErr.Operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	return apiErrorResponse(c, contextErr.HTTPStatusCode(),
		apiError{Code: contextErr.Code, Message: contextErr.Message})
}

func apiErrorResponse(c echo.Context, status int, errs ...apiError) error {
	return c.JSON(status, apiErrorsResponse{Errors: errs})
}
