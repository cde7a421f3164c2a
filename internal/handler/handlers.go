// Package handler is the HTTP layer: the first entry point after the router.
//
// Handlers declare their typed request, let the shared pipeline bind and
// validate it, call the service layer and write the response.
package handler

import (
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Home    *HomeHandler
	Person  *PersonHandler
	Form    *FormHandler
	File    *FileHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Person:  NewPersonHandler(s, services.Person),
		Form:    NewFormHandler(s, services.Auth, services.Contact),
		File:    NewFileHandler(s, services.Upload),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
