package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PersonHandler struct {
	Handler
	personService *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

func (h *PersonHandler) CreatePerson(c echo.Context, req *model.Person) (model.PersonOut, error) {
	return h.personService.Create(c.Request().Context(), *req), nil
}

func (h *PersonHandler) ShowPerson(c echo.Context, req *model.PersonDetailQuery) (model.PersonDetailOut, error) {
	return h.personService.Detail(*req), nil
}

func (h *PersonHandler) LookupPerson(c echo.Context, req *model.PersonLookupRequest) (model.PersonLookupOut, error) {
	return h.personService.Lookup(c.Request().Context(), req.PersonID)
}

func (h *PersonHandler) UpdatePerson(c echo.Context, req *model.PersonUpdateRequest) (map[string]any, error) {
	return h.personService.Update(c.Request().Context(), req.PersonID, req.Person, req.Location), nil
}
