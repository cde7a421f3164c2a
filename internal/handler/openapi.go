package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/people-api/internal/openapi"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// StaticDir holds the docs UI and other static assets.
const StaticDir = "static"

// OpenAPIHandler serves the generated OpenAPI document and the docs UI.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeJSON renders doc once and serves it as JSON.
func (h *OpenAPIHandler) ServeJSON(doc *openapi3.T) (echo.HandlerFunc, error) {
	data, err := openapi.JSON(doc)
	if err != nil {
		return nil, err
	}

	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
	}, nil
}

// ServeYAML renders doc once and serves it as YAML.
func (h *OpenAPIHandler) ServeYAML(doc *openapi3.T) (echo.HandlerFunc, error) {
	data, err := openapi.YAML(doc)
	if err != nil {
		return nil, err
	}

	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", data)
	}, nil
}

// ServeOpenAPIUI reads static/openapi.html and serves it as HTML.
//
// Cache-Control is "no-cache" so doc updates show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(filepath.Join(StaticDir, "openapi.html"))

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
