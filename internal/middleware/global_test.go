package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	custom := errs.NewValidationError("Validation failed", []errs.FieldError{{Field: "age", Error: "is required"}})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"application error", custom, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"wrapped application error", fmt.Errorf("handler: %w", custom), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "ROUTE_NOT_FOUND"},
		{"body too large", echo.ErrStatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE"},
		{"rate limited", echo.ErrTooManyRequests, http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := toHTTPError(tt.err)

			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestInternalErrorsHideDetails(t *testing.T) {
	httpErr := toHTTPError(errors.New("dial tcp 10.0.0.1:6379: connection refused"))

	assert.Equal(t, "Internal Server Error", httpErr.Message)
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(testutil.NewServer(t, nil))
	e := echo.New()

	t.Run("writes the error shape", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		global.GlobalErrorHandler(errs.NewValidationError("Validation failed", []errs.FieldError{{Field: "age", Error: "is required"}}), c)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{
			"code": "UNPROCESSABLE_ENTITY",
			"message": "Validation failed",
			"status": 422,
			"override": true,
			"errors": [{"field": "age", "error": "is required"}],
			"action": null
		}`, rec.Body.String())
	})

	t.Run("writes a custom body verbatim", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		global.GlobalErrorHandler(errs.NewNotFoundError("gone", false, nil).WithBody(map[string]any{"Error": true}), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"Error": true}`, rec.Body.String())
	})

	t.Run("no body for HEAD", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

		global.GlobalErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("committed responses are left alone", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		_ = c.String(http.StatusOK, "done")

		global.GlobalErrorHandler(errors.New("late"), c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})
}
