package model

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// DefaultDetailAge is used when GET /person/detail omits ?age.
const DefaultDetailAge = 18

// PersonDetailQuery holds the optional query of GET /person/detail.
type PersonDetailQuery struct {
	Name *string `query:"name" validate:"omitnil,min=1,max=20" example:"Rocío"`
	Age  int     `query:"age" validate:"gte=18,lte=99" example:"25"`
}

// NewPersonDetailQuery returns a query pre-filled with its defaults.
func NewPersonDetailQuery() *PersonDetailQuery {
	return &PersonDetailQuery{Age: DefaultDetailAge}
}

func (q *PersonDetailQuery) Validate() error {
	return validation.Struct(q)
}

// PersonLookupRequest addresses one person by ID.
type PersonLookupRequest struct {
	PersonID int `param:"person_id" validate:"gt=0" example:"1"`
}

func (r *PersonLookupRequest) Validate() error {
	return validation.Struct(r)
}

// PersonUpdateRequest is the input of PUT /person/{person_id}: the path ID
// plus a JSON body {"person": {...}, "location": {...}}.
type PersonUpdateRequest struct {
	PersonID int      `param:"person_id" json:"-" validate:"gt=0" example:"1"`
	Person   Person   `json:"person"`
	Location Location `json:"location"`
}

func (r *PersonUpdateRequest) Validate() error {
	return validation.Struct(r)
}

// LoginForm is the url-encoded (or multipart) body of POST /login.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=20" example:"facundo"`
	Password string `form:"password" validate:"required" example:"supersecret"`
}

// BindContext drops values decoded from a non-form body, so a JSON login is
// reported as missing fields.
func (f *LoginForm) BindContext(c echo.Context) error {
	if !isFormRequest(c) {
		*f = LoginForm{}
	}
	return nil
}

func (f *LoginForm) Validate() error {
	return validation.Struct(f)
}

// ContactForm is the body of POST /contac-us plus the caller's user agent and
// the optional ads cookie.
type ContactForm struct {
	FirstName string `form:"first_name" validate:"required,min=1,max=20" example:"Facundo"`
	LastName  string `form:"last_name" validate:"required,min=1,max=20" example:"García"`
	Email     string `form:"email" validate:"required,email" example:"facundo@example.com"`
	Message   string `form:"message" validate:"required,min=20" example:"I would like to know more about the API."`

	UserAgent *string `header:"User-Agent"`
	Ads       *string `cookie:"ads"`
}

// BindContext reads the User-Agent header and the ads cookie. Values decoded
// from a non-form body are dropped.
func (f *ContactForm) BindContext(c echo.Context) error {
	if !isFormRequest(c) {
		*f = ContactForm{}
	}

	if ua := c.Request().UserAgent(); ua != "" {
		f.UserAgent = &ua
	}

	if cookie, err := c.Cookie("ads"); err == nil {
		ads := cookie.Value
		f.Ads = &ads
	}

	return nil
}

func (f *ContactForm) Validate() error {
	return validation.Struct(f)
}

// ImageUpload is the multipart body of POST /post-image.
type ImageUpload struct {
	Image *multipart.FileHeader `file:"image"`
}

// BindContext pulls the "image" part out of the multipart form.
//
// A missing part, or a body that is not multipart at all, leaves Image nil
// and is reported by Validate.
func (u *ImageUpload) BindContext(c echo.Context) error {
	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		u.Image = fh
		return nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil
	default:
		return errs.NewBadRequestError("Could not read multipart form: "+err.Error(), false, nil, nil, nil)
	}
}

func (u *ImageUpload) Validate() error {
	if u.Image == nil {
		return validation.CustomValidationErrors{{Field: "image", Message: "is required"}}
	}
	return nil
}

// isFormRequest reports whether the body is url-encoded or multipart.
func isFormRequest(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm)
}
