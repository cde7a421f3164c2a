package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
)

// FormHandler serves the url-encoded form routes.
type FormHandler struct {
	Handler
	authService    *service.AuthService
	contactService *service.ContactService
}

func NewFormHandler(s *server.Server, authService *service.AuthService, contactService *service.ContactService) *FormHandler {
	return &FormHandler{
		Handler:        NewHandler(s),
		authService:    authService,
		contactService: contactService,
	}
}

func (h *FormHandler) Login(c echo.Context, req *model.LoginForm) (model.LoginOut, error) {
	return h.authService.Login(c.Request().Context(), *req), nil
}

// Contact responds with the caller's raw User-Agent, or null.
func (h *FormHandler) Contact(c echo.Context, req *model.ContactForm) (*string, error) {
	return h.contactService.Submit(c.Request().Context(), *req), nil
}
