package model

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(contentType string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestLoginFormBindContext(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        LoginForm
	}{
		{
			name:        "url-encoded",
			contentType: echo.MIMEApplicationForm,
			want:        LoginForm{Username: "a", Password: "b"},
		},
		{
			name:        "multipart",
			contentType: echo.MIMEMultipartForm + "; boundary=x",
			want:        LoginForm{Username: "a", Password: "b"},
		},
		{
			name:        "json is dropped",
			contentType: echo.MIMEApplicationJSON,
			want:        LoginForm{},
		},
		{
			name: "no content type is dropped",
			want: LoginForm{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := LoginForm{Username: "a", Password: "b"}

			require.NoError(t, form.BindContext(newContext(tt.contentType)))
			assert.Equal(t, tt.want, form)
		})
	}
}

func TestContactFormBindContext(t *testing.T) {
	t.Run("reads user agent and ads cookie", func(t *testing.T) {
		c := newContext(echo.MIMEApplicationForm)
		c.Request().Header.Set("User-Agent", "people-test/1.0")
		c.Request().AddCookie(&http.Cookie{Name: "ads", Value: "yes"})

		form := ContactForm{FirstName: "Facundo"}
		require.NoError(t, form.BindContext(c))

		assert.Equal(t, "Facundo", form.FirstName)
		require.NotNil(t, form.UserAgent)
		assert.Equal(t, "people-test/1.0", *form.UserAgent)
		require.NotNil(t, form.Ads)
		assert.Equal(t, "yes", *form.Ads)
	})

	t.Run("missing user agent stays nil", func(t *testing.T) {
		c := newContext(echo.MIMEApplicationForm)
		c.Request().Header.Del("User-Agent")

		var form ContactForm
		require.NoError(t, form.BindContext(c))

		assert.Nil(t, form.UserAgent)
		assert.Nil(t, form.Ads)
	})

	t.Run("json body values are dropped", func(t *testing.T) {
		c := newContext(echo.MIMEApplicationJSON)
		c.Request().Header.Set("User-Agent", "people-test/1.0")

		form := ContactForm{FirstName: "Facundo", Message: "a message long enough to pass"}
		require.NoError(t, form.BindContext(c))

		assert.Empty(t, form.FirstName)
		assert.Empty(t, form.Message)
		require.NotNil(t, form.UserAgent)
		assert.Equal(t, "people-test/1.0", *form.UserAgent)
	})
}
