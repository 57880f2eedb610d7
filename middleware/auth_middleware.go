package middleware

import (
	"bm/domain"
	"bm/port/api_key_port"
	"bm/utils/errors"
	"bm/utils/logger"
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// APIKeyAuth authenticates requests with a bearer API key and stores
// the resolved user in the request context. Lookup failures, unknown
// keys and expired keys all answer 401 without distinguishing why.
func APIKeyAuth(apiKeys api_key_port.ApiKeyPort) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := bearerToken(c.Request())
			if !ok {
				return unauthorized(c, "missing bearer token")
			}

			apiKey, err := apiKeys.GetAPIKey(c.Request().Context(), key)
			if err != nil || apiKey == nil {
				return unauthorized(c, "invalid api key")
			}
			if !apiKey.IsValid() {
				return unauthorized(c, "expired api key")
			}

			userContext := &domain.UserContext{
				UserID:    apiKey.UserID,
				LoginAt:   apiKey.Created,
				ExpiresAt: apiKey.Expires,
			}

			ctx := domain.SetUserContext(c.Request().Context(), userContext)
			ctx = context.WithValue(ctx, logger.UserIDKey, apiKey.UserID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c echo.Context, message string) error {
	authErr := errors.NewAppContextError(
		string(errors.ErrCodeUnauthorized),
		message,
		"middleware", "APIKeyAuth", "authenticate",
		nil,
		map[string]interface{}{
			"path":   c.Request().URL.Path,
			"method": c.Request().Method,
		},
	)
	return c.JSON(http.StatusUnauthorized, authErr.ToHTTPResponse())
}
