package rest

import (
	"bm/domain"
	"bm/utils/errors"
	"bm/utils/logger"
	"bm/validation"
	stderrors "errors"
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses using the structured
// error taxonomy. Domain sentinels are translated first so gateways
// can keep returning plain errors.
func handleError(c echo.Context, err error, operation string) error {
	enrichedErr := toContextError(c, err, operation)

	logger.Logger.Error("REST handler error",
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"layer", enrichedErr.Layer,
		"component", enrichedErr.Component,
		"operation", enrichedErr.Operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"is_retryable", enrichedErr.IsRetryable(),
	)

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

func toContextError(c echo.Context, err error, operation string) *errors.AppContextError {
	requestContext := map[string]interface{}{
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get("X-Request-ID"),
	}

	if appContextErr, ok := err.(*errors.AppContextError); ok {
		return errors.EnrichWithContext(appContextErr, "rest", "RESTHandler", operation, requestContext)
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return errors.NewValidationContextError(
			validationErr.Error(), "rest", "RESTHandler", operation, requestContext)
	}

	switch {
	case stderrors.Is(err, domain.ErrLinkNotFound),
		stderrors.Is(err, domain.ErrScreenshotNotFound):
		return errors.NewNotFoundContextError(
			"link not found", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrSettingsNotFound):
		return errors.NewNotFoundContextError(
			"settings not found", "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, domain.ErrUnauthorized), stderrors.Is(err, domain.ErrInvalidUserContext):
		return errors.NewAppContextError(
			string(errors.ErrCodeUnauthorized), "unauthorized",
			"rest", "RESTHandler", operation, err, requestContext)
	}

	return errors.NewUnknownContextError(
		"internal server error", "rest", "RESTHandler", operation, err, requestContext)
}

// handleValidationError creates a validation error response for input
// rejected before it reaches a usecase.
func handleValidationError(c echo.Context, message string, field string, value interface{}) error {
	validationErr := errors.NewValidationContextError(
		message,
		"rest", "RESTHandler", "validateInput",
		map[string]interface{}{
			"field":      field,
			"value":      value,
			"path":       c.Request().URL.Path,
			"method":     c.Request().Method,
			"request_id": c.Response().Header().Get("X-Request-ID"),
		},
	)

	logger.Logger.Error("REST validation error",
		"error", validationErr.Error(),
		"field", field,
		"value", value,
		"path", c.Request().URL.Path,
	)
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}

// currentUser returns the authenticated user placed in the request
// context by the auth middleware.
func currentUser(c echo.Context) (*domain.UserContext, error) {
	return domain.GetUserContext(c.Request().Context())
}

// requestURL rebuilds the absolute URL of the current request so that
// pagination pointers carry scheme and host.
func requestURL(c echo.Context) *url.URL {
	u := *c.Request().URL
	u.Scheme = c.Scheme()
	u.Host = c.Request().Host
	return &u
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
