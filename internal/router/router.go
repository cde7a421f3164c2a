// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares, maps every route of the route table to its
// handler and serves the OpenAPI document generated from the same table.
package router

import (
	"fmt"

	"github.com/deppfellow/people-api/internal/handler"
	"github.com/deppfellow/people-api/internal/middleware"
	"github.com/deppfellow/people-api/internal/openapi"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
)

// Info describes the API in the generated OpenAPI document.
var Info = openapi.Info{
	Title:       "People API",
	Version:     "1.0.0",
	Description: "Create, look up and update people, submit forms and upload images. Every input is validated before it reaches a handler.",
}

// NewRouter builds the Echo instance serving h.
func NewRouter(s *server.Server, h *handler.Handlers) (*echo.Echo, error) {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	table := routes(h, middlewares)
	operations := make([]openapi.Operation, 0, len(table))

	for _, r := range table {
		router.Add(r.Method, r.Path, r.handler, r.middleware...)
		operations = append(operations, r.Operation)
	}

	doc, err := openapi.NewGenerator(Info).Generate(operations)
	if err != nil {
		return nil, fmt.Errorf("failed to generate OpenAPI document: %w", err)
	}

	if err := registerSystemRoutes(router, h, doc); err != nil {
		return nil, err
	}

	return router, nil
}
