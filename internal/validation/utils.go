package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ValidationFailedMessage is the message of every 422 response.
const ValidationFailedMessage = "Validation failed"

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct(req).
type Validatable interface {
	Validate() error
}

// ContextBinder is implemented by request types that read inputs Echo's
// binder does not handle (headers, cookies, uploaded files).
//
// BindContext runs after c.Bind and before Validate.
type ContextBinder interface {
	BindContext(c echo.Context) error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return ValidationFailedMessage
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates path, query, form and JSON body fields.
//  2. payload.BindContext(c), when implemented, reads the remaining inputs.
//  3. payload.Validate() applies validation rules.
//
// Any failure is returned as a 422 *errs.HTTPError listing field errors. A
// JSON value of the wrong type does not stop decoding, so it is reported
// together with the violations found in the rest of the body.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var fieldErrors []errs.FieldError

	if err := c.Bind(payload); err != nil {
		typeErr, ok := jsonTypeError(err)
		if !ok {
			return bindError(c, err)
		}
		fieldErrors = append(fieldErrors, typeErr)
	}

	if binder, ok := payload.(ContextBinder); ok {
		if err := binder.BindContext(c); err != nil {
			return bindError(c, err)
		}
	}

	for _, fe := range validateStruct(payload) {
		if !hasField(fieldErrors, fe.Field) {
			fieldErrors = append(fieldErrors, fe)
		}
	}

	if len(fieldErrors) > 0 {
		return errs.NewValidationError(ValidationFailedMessage, fieldErrors)
	}

	return nil
}

// jsonTypeError extracts a wrong-type JSON value from a bind error.
func jsonTypeError(err error) (errs.FieldError, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return errs.FieldError{}, false
	}

	field := wirePath(typeErr.Field)
	if field == "" {
		field = "body"
	}

	return errs.FieldError{
		Field: field,
		Error: fmt.Sprintf("must be of type %s", typeErr.Type.Kind()),
	}, true
}

func hasField(fieldErrors []errs.FieldError, field string) bool {
	for _, fe := range fieldErrors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// bindError converts an Echo binding failure into the 422 shape used for
// validation errors, so malformed input and out-of-range input look alike.
func bindError(c echo.Context, err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return errs.NewRequestEntityTooLargeError("Request body too large")
	}

	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewValidationError(ValidationFailedMessage, []errs.FieldError{{
			Field: bindingErr.Field,
			Error: "is not a valid value",
		}})
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errs.NewValidationError(ValidationFailedMessage, []errs.FieldError{{
			Field: inputName(c, numErr.Num),
			Error: "is not a valid number",
		}})
	}

	if typeErr, ok := jsonTypeError(err); ok {
		return errs.NewValidationError(ValidationFailedMessage, []errs.FieldError{typeErr})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.NewValidationError(ValidationFailedMessage, []errs.FieldError{{
			Field: "body",
			Error: "is not valid JSON",
		}})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusUnsupportedMediaType {
			return echoErr
		}
		if msg, ok := echoErr.Message.(string); ok {
			return errs.NewValidationError(msg, nil)
		}
	}

	return errs.ValidationError(err)
}

// inputName finds the path, query or form input that carried value. Echo's
// binder reports scalar parse failures without the field name.
func inputName(c echo.Context, value string) string {
	for i, name := range c.ParamNames() {
		if i < len(c.ParamValues()) && c.ParamValues()[i] == value {
			return name
		}
	}

	for name, values := range c.QueryParams() {
		if slices.Contains(values, value) {
			return name
		}
	}

	if form := c.Request().Form; form != nil {
		for name, values := range form {
			if slices.Contains(values, value) {
				return name
			}
		}
	}

	return "body"
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fieldPath(err),
			Error: fieldMessage(err),
		})
	}

	return fieldErrors
}

// fieldPath is the wire path of a validator error.
func fieldPath(err validator.FieldError) string {
	if path := wirePath(err.Namespace()); path != "" {
		return path
	}
	return err.Field()
}

// wirePath keeps only wire names from a dotted Go path. Go identifiers (the
// root type and embedded structs) start with an upper-case letter, wire names
// don't:
//
//	"PersonUpdateRequest.person.PersonBase.first_name" -> "person.first_name"
//	"person.PersonBase.age" -> "person.age"
func wirePath(goPath string) string {
	segments := strings.Split(goPath, ".")
	path := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" || unicode.IsUpper(rune(segment[0])) {
			continue
		}
		path = append(path, segment)
	}
	return strings.Join(path, ".")
}

func fieldMessage(err validator.FieldError) string {
	isString := err.Kind() == reflect.String

	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", err.Param())

	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "enum":
		if e, ok := err.Value().(Enum); ok {
			return fmt.Sprintf("must be one of: %s", strings.Join(e.Values(), ", "))
		}
		return "is not an allowed value"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}
