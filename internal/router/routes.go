package router

import (
	"net/http"

	"github.com/deppfellow/people-api/internal/handler"
	"github.com/deppfellow/people-api/internal/middleware"
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/openapi"
	"github.com/deppfellow/people-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Documentation tags.
const (
	TagHome    = "Home"
	TagPersons = "Persons"
	TagForms   = "Forms"
	TagFiles   = "Files"
)

type route struct {
	openapi.Operation
	handler    echo.HandlerFunc
	middleware []echo.MiddlewareFunc
}

// newRoute binds a typed handler to op. The request and response types are
// recorded on op for the OpenAPI document.
func newRoute[Req validation.Validatable, Res any](
	op openapi.Operation,
	h handler.Handler,
	fn handler.HandlerFunc[Req, Res],
	newReq func() Req,
	mw ...echo.MiddlewareFunc,
) route {
	req := newReq()
	if _, ok := any(req).(*handler.NoInput); !ok {
		op.Request = req
	}

	var res Res
	op.Response = res

	return route{
		Operation:  op,
		handler:    handler.Handle(h, fn, op.Status, newReq),
		middleware: mw,
	}
}

func newPerson() *model.Person {
	return &model.Person{}
}

func newPersonLookupRequest() *model.PersonLookupRequest {
	return &model.PersonLookupRequest{}
}

func newPersonUpdateRequest() *model.PersonUpdateRequest {
	return &model.PersonUpdateRequest{}
}

func newLoginForm() *model.LoginForm {
	return &model.LoginForm{}
}

func newContactForm() *model.ContactForm {
	return &model.ContactForm{}
}

func newImageUpload() *model.ImageUpload {
	return &model.ImageUpload{}
}

// routes is the route table. It is built once at start-up.
func routes(h *handler.Handlers, m *middleware.Middlewares) []route {
	return []route{
		newRoute(openapi.Operation{
			ID:          "home",
			Method:      http.MethodGet,
			Path:        "/",
			Tags:        []string{TagHome},
			Summary:     "Home",
			Description: "Returns a fixed greeting. Useful to check the API answers.",
			Status:      http.StatusOK,
		}, h.Home.Handler, h.Home.Home, handler.NewNoInput),

		newRoute(openapi.Operation{
			ID:      "createPerson",
			Method:  http.MethodPost,
			Path:    "/person/new",
			Tags:    []string{TagPersons},
			Summary: "Create person",
			Description: "Validates a person and returns it without the password.\n\n" +
				"- first_name, last_name: 1 to 50 characters\n" +
				"- age: 18 or older and below 100\n" +
				"- email: a valid email address\n" +
				"- hair_color: optional, one of black, white, brown, red, blonde\n" +
				"- is_married: optional\n" +
				"- password: at least 8 characters, never returned\n\n" +
				"Nothing is stored.",
			Status: http.StatusCreated,
		}, h.Person.Handler, h.Person.CreatePerson, newPerson),

		newRoute(openapi.Operation{
			ID:      "showPerson",
			Method:  http.MethodGet,
			Path:    "/person/detail",
			Tags:    []string{TagPersons},
			Summary: "Show person",
			Description: "Echoes the optional name (1 to 20 characters) and age (18 to 99, default 18) " +
				"query parameters under the \"Person\" key.",
			Status: http.StatusOK,
		}, h.Person.Handler, h.Person.ShowPerson, model.NewPersonDetailQuery),

		newRoute(openapi.Operation{
			ID:      "lookupPerson",
			Method:  http.MethodGet,
			Path:    "/person/detail/:person_id",
			Tags:    []string{TagPersons},
			Summary: "Look up person",
			Description: "Confirms that a person ID exists. person_id must be greater than 0. " +
				"Unknown IDs answer 404 with {\"Error\": true, \"message\": \"This person doesn't exists!\"}.",
			Status: http.StatusOK,
			Responses: []openapi.Response{{
				Status:      http.StatusNotFound,
				Description: "Person not found",
				Body:        model.PersonNotFound{},
			}},
		}, h.Person.Handler, h.Person.LookupPerson, newPersonLookupRequest),

		newRoute(openapi.Operation{
			ID:      "updatePerson",
			Method:  http.MethodPut,
			Path:    "/person/:person_id",
			Tags:    []string{TagPersons},
			Summary: "Update person",
			Description: "Validates a person and a location and returns all their fields merged into one object. " +
				"Location fields win on key collisions. Nothing is stored.",
			Status: http.StatusOK,
		}, h.Person.Handler, h.Person.UpdatePerson, newPersonUpdateRequest),

		newRoute(openapi.Operation{
			ID:          "login",
			Method:      http.MethodPost,
			Path:        "/login",
			Tags:        []string{TagPersons, TagForms},
			Summary:     "Login",
			Description: "Accepts a username (at most 20 characters) and a password as form fields and returns the username with a success message. The password is never returned.",
			Status:      http.StatusOK,
		}, h.Form.Handler, h.Form.Login, newLoginForm),

		newRoute(openapi.Operation{
			ID:      "contact",
			Method:  http.MethodPost,
			Path:    "/contac-us",
			Tags:    []string{TagForms},
			Summary: "Contact us",
			Description: "Accepts a contact form (first_name and last_name up to 20 characters, email, message of at least 20 characters). " +
				"Returns the caller's User-Agent header. The ads cookie is accepted but unused.",
			Status: http.StatusOK,
		}, h.Form.Handler, h.Form.Contact, newContactForm),

		newRoute(openapi.Operation{
			ID:          "postImage",
			Method:      http.MethodPost,
			Path:        "/post-image",
			Tags:        []string{TagFiles},
			Summary:     "Upload image",
			Description: "Accepts a multipart \"image\" file and returns its name, content type and size in kilobytes rounded to two decimals. The file is not stored.",
			Status:      http.StatusOK,
			Responses: []openapi.Response{{
				Status:      http.StatusRequestEntityTooLarge,
				Description: "Upload exceeds the configured size limit",
			}},
		}, h.File.Handler, h.File.PostImage, newImageUpload, m.Global.UploadLimit()),
	}
}
