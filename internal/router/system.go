package router

import (
	"github.com/deppfellow/people-api/internal/handler"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API
// itself: health, the OpenAPI document, the docs UI and static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, doc *openapi3.T) error {
	r.GET("/status", h.Health.CheckHealth)

	serveJSON, err := h.OpenAPI.ServeJSON(doc)
	if err != nil {
		return err
	}
	r.GET("/openapi.json", serveJSON)

	serveYAML, err := h.OpenAPI.ServeYAML(doc)
	if err != nil {
		return err
	}
	r.GET("/openapi.yaml", serveYAML)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	return nil
}
