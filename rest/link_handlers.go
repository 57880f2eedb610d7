package rest

import (
	"bm/config"
	"bm/di"
	"bm/domain"
	"bm/validation"
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerLinkRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/links", listLinksHandler(container, cfg))
	v1.POST("/links", createLinkHandler(container))
	v1.PUT("/links/:id", updateLinkHandler(container))
	v1.DELETE("/links/:id", deleteLinkHandler(container))
}

func listLinksHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "listLinks")
		}

		params := map[string]string{
			"domain": c.QueryParam("domain"),
			"date":   c.QueryParam("date"),
			"tag":    c.QueryParam("tag"),
			"q":      c.QueryParam("q"),
			"limit":  c.QueryParam("limit"),
			"page":   c.QueryParam("page"),
			"random": c.QueryParam("random"),
		}
		query := validation.ParseListingQuery(params, cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)

		filter := domain.LinkFilter{
			Domain: query.Domain,
			Tag:    query.Tag,
			Date:   query.Date,
			Search: query.Search,
			Random: query.Random,
			Limit:  query.Limit,
			Page:   query.Page,
		}

		result, err := container.ListLinksUsecase.Execute(c.Request().Context(), user.UserID, filter, requestURL(c))
		if err != nil {
			return handleError(c, err, "listLinks")
		}

		links := result.Links
		if links == nil {
			links = []*domain.Link{}
		}

		// json=1 strips the envelope and returns the bare array.
		if c.QueryParam("json") != "" {
			return c.JSON(http.StatusOK, links)
		}

		return c.JSON(http.StatusOK, listLinksResponse{
			Links: links,
			Next:  result.Next,
			Prev:  result.Prev,
		})
	}
}

func createLinkHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "createLink")
		}

		var req createLinkRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		link, created, err := container.LinkCrudUsecase.CreateLink(
			c.Request().Context(), user.UserID, req.URL, req.Title, req.Note, req.Tags)
		if err != nil {
			return handleError(c, err, "createLink")
		}

		// Re-adding an existing URL answers 200 with the old link.
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		return c.JSON(status, link)
	}
}

func updateLinkHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "updateLink")
		}

		linkID, ok := parseUUIDParam(c, "id")
		if !ok {
			return handleValidationError(c, "invalid link id", "id", c.Param("id"))
		}

		var req updateLinkRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		link, err := container.LinkCrudUsecase.UpdateLink(
			c.Request().Context(), user.UserID, linkID, req.URL, req.Title, req.Note, req.Tags)
		if err != nil {
			return handleError(c, err, "updateLink")
		}

		return c.JSON(http.StatusOK, link)
	}
}

func deleteLinkHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "deleteLink")
		}

		linkID, ok := parseUUIDParam(c, "id")
		if !ok {
			return handleValidationError(c, "invalid link id", "id", c.Param("id"))
		}

		if err := container.LinkCrudUsecase.DeleteLink(c.Request().Context(), user.UserID, linkID); err != nil {
			return handleError(c, err, "deleteLink")
		}

		return c.NoContent(http.StatusNoContent)
	}
}
