// Package testutil builds servers and requests for package tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/logger"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/stretchr/testify/require"
)

// NewConfig returns a valid local configuration without Redis or New Relic.
func NewConfig() *config.Config {
	observability := config.DefaultObservabilityConfig()
	observability.Environment = "local"
	observability.Logging.Level = "debug"

	return &config.Config{
		Primary: config.Primary{Env: "local"},
		Server: config.ServerConfig{
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			MaxUploadBytes:     10 << 20,
		},
		Redis: config.RedisConfig{
			PersonsKey: "people:persons",
		},
		Observability: observability,
	}
}

// NewServer returns a server for cfg that logs nowhere. A nil cfg uses
// NewConfig().
func NewServer(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()

	if cfg == nil {
		cfg = NewConfig()
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService).Output(io.Discard)

	s, err := server.New(cfg, &log, loggerService)
	require.NoError(t, err)

	return s
}

// Request is an HTTP request to run against a handler.
type Request struct {
	Method  string
	Path    string
	Body    io.Reader
	Headers map[string]string
	Cookies []*http.Cookie
}

func GET(path string) Request {
	return Request{Method: http.MethodGet, Path: path}
}

// JSON builds a request with body encoded as JSON.
func JSON(t *testing.T, method, path string, body any) Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	return Request{
		Method:  method,
		Path:    path,
		Body:    bytes.NewReader(data),
		Headers: map[string]string{"Content-Type": "application/json"},
	}
}

// RawJSON builds a request whose body is sent as-is with a JSON content type.
func RawJSON(method, path, body string) Request {
	return Request{
		Method:  method,
		Path:    path,
		Body:    bytes.NewBufferString(body),
		Headers: map[string]string{"Content-Type": "application/json"},
	}
}

// Form builds a url-encoded form POST.
func Form(path string, values url.Values) Request {
	return Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    bytes.NewBufferString(values.Encode()),
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	}
}

// File is one part of a multipart upload.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// Multipart builds a multipart/form-data POST with the given files.
func Multipart(t *testing.T, path string, files ...File) Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, f := range files {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="` + f.Field + `"; filename="` + f.Filename + `"`}
		header["Content-Type"] = []string{f.ContentType}

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Headers: map[string]string{"Content-Type": writer.FormDataContentType()},
	}
}

// WithHeader returns req with an extra header.
func WithHeader(req Request, key, value string) Request {
	headers := map[string]string{}
	for k, v := range req.Headers {
		headers[k] = v
	}
	headers[key] = value
	req.Headers = headers

	return req
}

// WithCookie returns req with an extra cookie.
func WithCookie(req Request, cookie *http.Cookie) Request {
	req.Cookies = append(append([]*http.Cookie{}, req.Cookies...), cookie)
	return req
}

// Do runs req against h and returns the recorded response.
func Do(t *testing.T, h http.Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(req.Method, req.Path, req.Body)
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}
	for _, c := range req.Cookies {
		r.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	return rec
}

// DecodeJSON decodes the recorded body into a value of type T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())

	return out
}
