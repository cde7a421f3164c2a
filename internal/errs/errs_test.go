package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores("Unprocessable Entity"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "", MakeUpperCaseWithUnderscores(""))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"validation", NewValidationError("invalid", nil), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too large", NewRequestEntityTooLargeError("big"), http.StatusRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE"},
		{"too many", NewTooManyRequestsError(), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestCustomCode(t *testing.T) {
	code := "PERSON_NOT_FOUND"

	err := NewNotFoundError("missing", true, &code)

	assert.Equal(t, code, err.Code)
	assert.True(t, err.Override)
	assert.Equal(t, "missing", err.Error())
}

func TestPayload(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		err := NewValidationError("Validation failed", []FieldError{{Field: "age", Error: "is required"}})

		payload, ok := err.Payload().(HTTPError)
		require.True(t, ok)
		assert.Equal(t, "Validation failed", payload.Message)
		assert.Equal(t, http.StatusUnprocessableEntity, payload.Status)
		assert.Equal(t, []FieldError{{Field: "age", Error: "is required"}}, payload.Errors)
		assert.Nil(t, payload.Body)
	})

	t.Run("with body", func(t *testing.T) {
		body := map[string]any{"Error": true}
		base := NewNotFoundError("missing", false, nil)

		err := base.WithBody(body)

		assert.Equal(t, body, err.Payload())
		assert.Nil(t, base.Body)
		assert.Equal(t, http.StatusNotFound, err.Status)
	})
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("bad", true, nil, nil, &Action{Type: ActionTypeRedirect, Value: "/login"})

	err := base.WithMessage("worse")

	assert.Equal(t, "worse", err.Message)
	assert.Equal(t, "bad", base.Message)
	assert.Equal(t, base.Action, err.Action)
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewInternalServerError())

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("boom"))

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "Validation failed: boom", err.Message)
	assert.Empty(t, err.Errors)
}
