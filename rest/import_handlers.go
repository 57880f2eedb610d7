package rest

import (
	"bm/config"
	"bm/di"
	"bm/usecase/import_links_usecase"
	"bm/utils/errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerImportRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.POST("/import/:source", importLinksHandler(container))
}

func importLinksHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "importLinks")
		}

		source := import_links_usecase.ImportSource(c.Param("source"))

		count, err := container.ImportLinksUsecase.Execute(c.Request().Context(), user.UserID, source)
		if err != nil {
			return handleError(c, withSettingsHint(err), "importLinks")
		}

		return c.JSON(http.StatusOK, importResponse{
			Imported: count,
			Message:  fmt.Sprintf("imported %d links from %s", count, source),
		})
	}
}

// withSettingsHint points missing-credential failures at the settings
// endpoint so the caller knows where to fix them.
func withSettingsHint(err error) error {
	appErr, ok := err.(*errors.AppContextError)
	if !ok || appErr.Code != string(errors.ErrCodeMissingCredential) {
		return err
	}
	return errors.NewMissingCredentialContextError(
		appErr.Message+"; add your credentials via PUT /v1/settings",
		appErr.Layer, appErr.Component, appErr.Operation, appErr.Context)
}
