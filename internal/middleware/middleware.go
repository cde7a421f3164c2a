// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as request
// IDs, request-scoped logging, tracing, CORS, rate limiting, upload caps and
// panic recovery, plus the global error handler that renders every error.
package middleware
