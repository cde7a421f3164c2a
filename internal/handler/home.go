package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

func (h *HomeHandler) Home(c echo.Context, _ *NoInput) (model.Home, error) {
	return model.NewHome(), nil
}
