// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (required fields, length
// and numeric bounds, enum membership, email format) declared in struct tags
// and turns every violation into a field error the client can understand.
// All violations are collected; validation never stops at the first one.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type. validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

// wireTags are consulted in order to find the name a field has on the wire.
var wireTags = []string{"json", "query", "form", "param", "header", "cookie", "file"}

// Enum is implemented by closed value sets. Fields of such types are checked
// with the `enum` tag.
type Enum interface {
	IsValid() bool
	Values() []string
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(wireName)

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("enum", validateEnum)

	return v
}

func validateEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(Enum)
	return ok && e.IsValid()
}

// wireName reports errors under the name the client used, so a failing
// PersonBase.FirstName is reported as "first_name".
func wireName(field reflect.StructField) string {
	for _, tag := range wireTags {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

// Struct validates v against its `validate` tags.
//
// Request types call it from their Validate() method.
func Struct(v any) error {
	return validate.Struct(v)
}
