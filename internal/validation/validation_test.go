package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validator namespaces start with Go type names, so the fixtures are
// exported like real request types.
type Tone string

func (t Tone) IsValid() bool { return t == "warm" || t == "cool" }
func (t Tone) Values() []string { return []string{"warm", "cool"} }

type Named struct {
	Name string `json:"name" validate:"required,max=5"`
}

type Address struct {
	City string `json:"city" validate:"required,min=2"`
}

type Profile struct {
	Named
	ID      int     `param:"id" json:"-" validate:"gt=0"`
	Age     int     `json:"age" validate:"gte=18,lt=100"`
	Email   string  `json:"email" validate:"required,email"`
	Tone    *Tone   `json:"tone" validate:"omitnil,enum"`
	Address Address `json:"address"`
}

func (p *Profile) Validate() error { return Struct(p) }

type Search struct {
	Page int    `query:"page" validate:"gte=1"`
	Sort string `query:"sort" validate:"omitempty,oneof=asc desc"`
}

func (s *Search) Validate() error { return Struct(s) }

type Checked struct{}

func (c *Checked) Validate() error {
	return CustomValidationErrors{{Field: "file", Message: "is required"}}
}

func bind(t *testing.T, method, target, body string, payload Validatable, params ...string) error {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	c := echo.New().NewContext(req, httptest.NewRecorder())
	if len(params) > 0 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}

	return BindAndValidate(c, payload)
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	require.Error(t, err)
	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok, "got %T: %v", err, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)

	out := map[string]string{}
	for _, fe := range httpErr.Errors {
		out[fe.Field] = fe.Error
	}
	return out
}

func TestWirePath(t *testing.T) {
	assert.Equal(t, "person.first_name", wirePath("PersonUpdateRequest.person.PersonBase.first_name"))
	assert.Equal(t, "person.age", wirePath("person.PersonBase.age"))
	assert.Equal(t, "age", wirePath("PersonBase.age"))
	assert.Equal(t, "", wirePath("Person"))
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := &Profile{}
		err := bind(t, http.MethodPut, "/profiles/3",
			`{"name":"Ana","age":30,"email":"ana@example.com","tone":"warm","address":{"city":"Lima"}}`,
			p, "id", "3")

		require.NoError(t, err)
		assert.Equal(t, 3, p.ID)
		assert.Equal(t, "Ana", p.Name)
		assert.Equal(t, "Lima", p.Address.City)
	})

	t.Run("collects every violation with wire names", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/0",
			`{"name":"Anastasia","age":17,"email":"nope","tone":"hot","address":{"city":"L"}}`,
			&Profile{}, "id", "0")

		assert.Equal(t, map[string]string{
			"id":           "must be greater than 0",
			"name":         "must not exceed 5 characters",
			"age":          "must be greater than or equal to 18",
			"email":        "must be a valid email address",
			"tone":         "must be one of: warm, cool",
			"address.city": "must be at least 2 characters",
		}, fieldErrors(t, err))
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/1", `{"age":20}`, &Profile{}, "id", "1")

		fields := fieldErrors(t, err)
		assert.Equal(t, "is required", fields["name"])
		assert.Equal(t, "is required", fields["email"])
		assert.Equal(t, "is required", fields["address.city"])
	})

	t.Run("exclusive upper bound", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/1",
			`{"name":"Ana","age":100,"email":"ana@example.com","address":{"city":"Lima"}}`,
			&Profile{}, "id", "1")

		assert.Equal(t, map[string]string{"age": "must be less than 100"}, fieldErrors(t, err))
	})

	t.Run("truncated json", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/1", `{"name":`, &Profile{}, "id", "1")

		assert.Equal(t, map[string]string{"body": "is not valid JSON"}, fieldErrors(t, err))
	})

	t.Run("invalid json token", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/1", `{"name":}`, &Profile{}, "id", "1")

		assert.Equal(t, map[string]string{"body": "is not valid JSON"}, fieldErrors(t, err))
	})

	t.Run("wrong json type is reported with the other violations", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/1", `{"age":"old"}`, &Profile{}, "id", "1")

		assert.Equal(t, map[string]string{
			"age":          "must be of type int",
			"name":         "is required",
			"email":        "is required",
			"address.city": "is required",
		}, fieldErrors(t, err))
	})

	t.Run("wrong json type in embedded struct uses the wire name", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/1",
			`{"name":5,"age":30,"email":"ana@example.com","address":{"city":"Lima"}}`,
			&Profile{}, "id", "1")

		assert.Equal(t, map[string]string{"name": "must be of type string"}, fieldErrors(t, err))
	})

	t.Run("wrong json type in nested struct uses the dotted path", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/1",
			`{"name":"Ana","age":30,"email":"ana@example.com","address":{"city":7}}`,
			&Profile{}, "id", "1")

		assert.Equal(t, map[string]string{"address.city": "must be of type string"}, fieldErrors(t, err))
	})

	t.Run("non numeric path parameter", func(t *testing.T) {
		err := bind(t, http.MethodPut, "/profiles/abc", `{}`, &Profile{}, "id", "abc")

		assert.Equal(t, map[string]string{"id": "is not a valid number"}, fieldErrors(t, err))
	})

	t.Run("query parameters", func(t *testing.T) {
		s := &Search{Page: 1}
		require.NoError(t, bind(t, http.MethodGet, "/search?sort=desc", "", s))
		assert.Equal(t, 1, s.Page)
		assert.Equal(t, "desc", s.Sort)

		err := bind(t, http.MethodGet, "/search?page=0&sort=up", "", &Search{})
		assert.Equal(t, map[string]string{
			"page": "must be greater than or equal to 1",
			"sort": "must be one of: asc desc",
		}, fieldErrors(t, err))

		err = bind(t, http.MethodGet, "/search?page=two", "", &Search{})
		assert.Equal(t, map[string]string{"page": "is not a valid number"}, fieldErrors(t, err))
	})

	t.Run("custom validation errors", func(t *testing.T) {
		err := bind(t, http.MethodPost, "/upload", "", &Checked{})

		assert.Equal(t, map[string]string{"file": "is required"}, fieldErrors(t, err))
	})
}
