package errs

import "strings"

// FieldError represents a single violated constraint on an input field.
// Example:
//
//	{ "field": "person.email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the dotted wire name of the offending input (e.g. "person.age").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	// Usually "Value" holds the URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "UNPROCESSABLE_ENTITY").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the client decide whether to show Message as-is.
//   - Errors: per-field violations (validation).
//   - Action: client instruction, optional.
//
// Body, when set, replaces the whole serialized error. It is used by domain
// errors whose wire shape is fixed by the API contract.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`

	Body any `json:"-"`
}

// Error returns the Message so printing/logging the error shows it.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError. It does not compare fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
		Body:     e.Body,
	}
}

// WithBody returns a copy of this HTTPError that is rendered as body.
func (e *HTTPError) WithBody(body any) *HTTPError {
	clone := e.WithMessage(e.Message)
	clone.Body = body

	return clone
}

// Payload is what the global error handler serializes for this error.
func (e *HTTPError) Payload() any {
	if e.Body != nil {
		return e.Body
	}

	return HTTPError{
		Code:     e.Code,
		Message:  e.Message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
