// Package errs defines the error types that cross the HTTP boundary.
//
// Every failure a handler can produce is expressed as an *HTTPError so the
// global error handler can render one consistent JSON shape: validation
// failures carry a list of field errors, domain failures may carry a custom
// body that is written verbatim.
package errs
