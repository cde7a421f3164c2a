// Package openapi builds the OpenAPI 3 document of the API from the route
// table.
//
// Schemas are derived from the request and response types with openapi3gen.
// The `validate` tags that drive request validation are mapped onto schema
// constraints (minLength, maximum, enum, format...) so the published document
// and the enforced rules cannot drift apart.
package openapi

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/validation"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"gopkg.in/yaml.v3"
)

// Version is the OpenAPI version of generated documents.
const Version = "3.0.3"

const (
	mimeJSON      = "application/json"
	mimeForm      = "application/x-www-form-urlencoded"
	mimeMultipart = "multipart/form-data"
)

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

// Info is the document's info object.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Response documents a status code other than the success status.
//
// A nil Body is documented with the errs.HTTPError schema.
type Response struct {
	Status      int
	Description string
	Body        any
}

// Operation describes one route.
//
// Request is a value of the route's request type (usually the pointer the
// handler binds into); non-zero fields are published as defaults. Request and
// Response may be nil.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Tags        []string
	Summary     string
	Description string
	Status      int
	Request     any
	Response    any
	Responses   []Response
}

// Generator turns operations into an OpenAPI document.
type Generator struct {
	info    Info
	schemas *openapi3gen.Generator
}

func NewGenerator(info Info) *Generator {
	return &Generator{
		info:    info,
		schemas: openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(customizeSchema)),
	}
}

// Generate builds the document. Operations keep their order; tags are listed
// in order of first use.
func (g *Generator) Generate(operations []Operation) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       g.info.Title,
			Version:     g.info.Version,
			Description: g.info.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	seenTags := map[string]bool{}

	for _, op := range operations {
		operation, err := g.operation(op)
		if err != nil {
			return nil, fmt.Errorf("failed to process %s %s: %w", op.Method, op.Path, err)
		}

		path := PathFromEcho(op.Path)
		pathItem := doc.Paths.Find(path)
		if pathItem == nil {
			pathItem = &openapi3.PathItem{}
			doc.Paths.Set(path, pathItem)
		}
		pathItem.SetOperation(op.Method, operation)

		for _, tag := range op.Tags {
			if !seenTags[tag] {
				seenTags[tag] = true
				doc.Tags = append(doc.Tags, &openapi3.Tag{Name: tag})
			}
		}
	}

	return doc, nil
}

func (g *Generator) operation(op Operation) (*openapi3.Operation, error) {
	operation := openapi3.NewOperation()
	operation.OperationID = op.ID
	operation.Tags = op.Tags
	operation.Summary = op.Summary
	operation.Description = op.Description
	operation.Responses = openapi3.NewResponsesWithCapacity(len(op.Responses) + 2)

	if op.Request != nil {
		parameters, err := g.parameters(reflect.ValueOf(op.Request))
		if err != nil {
			return nil, fmt.Errorf("failed to extract parameters: %w", err)
		}
		operation.Parameters = parameters

		body, err := g.requestBody(reflect.TypeOf(op.Request))
		if err != nil {
			return nil, fmt.Errorf("failed to create request body: %w", err)
		}
		operation.RequestBody = body
	}

	status := op.Status
	if status == 0 {
		status = http.StatusOK
	}

	success := openapi3.NewResponse().WithDescription(http.StatusText(status))
	if op.Response != nil {
		schema, err := g.schemaRef(reflect.TypeOf(op.Response))
		if err != nil {
			return nil, fmt.Errorf("failed to create response schema: %w", err)
		}
		success.WithJSONSchemaRef(schema)
	}
	operation.AddResponse(status, success)

	responses := op.Responses
	if op.Request != nil {
		responses = append(responses, Response{
			Status:      http.StatusUnprocessableEntity,
			Description: "Validation Error",
		})
	}

	for _, r := range responses {
		response, err := g.errorResponse(r)
		if err != nil {
			return nil, err
		}
		operation.AddResponse(r.Status, response)
	}

	return operation, nil
}

func (g *Generator) errorResponse(r Response) (*openapi3.Response, error) {
	body := r.Body
	if body == nil {
		body = errs.HTTPError{}
	}

	schema, err := g.schemaRef(reflect.TypeOf(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %d response schema: %w", r.Status, err)
	}

	description := r.Description
	if description == "" {
		description = http.StatusText(r.Status)
	}

	return openapi3.NewResponse().WithDescription(description).WithJSONSchemaRef(schema), nil
}

// parameters extracts path, query, header and cookie parameters.
func (g *Generator) parameters(request reflect.Value) (openapi3.Parameters, error) {
	var parameters openapi3.Parameters

	for _, field := range fields(request) {
		for _, in := range []string{"param", "query", "header", "cookie"} {
			name := tagName(field.StructField, in)
			if name == "" {
				continue
			}

			schema, err := g.fieldSchema(field.StructField)
			if err != nil {
				return nil, err
			}

			if !field.Value.IsZero() && field.Value.Kind() != reflect.Pointer {
				schema.Value.Default = field.Value.Interface()
			}

			var parameter *openapi3.Parameter
			switch in {
			case "param":
				parameter = openapi3.NewPathParameter(name)
			case "query":
				parameter = openapi3.NewQueryParameter(name).WithRequired(isRequired(field.StructField))
			case "header":
				parameter = openapi3.NewHeaderParameter(name).WithRequired(isRequired(field.StructField))
			case "cookie":
				parameter = openapi3.NewCookieParameter(name).WithRequired(isRequired(field.StructField))
			}
			parameter.Schema = schema

			parameters = append(parameters, &openapi3.ParameterRef{Value: parameter})
		}
	}

	return parameters, nil
}

// requestBody documents JSON, form or multipart bodies. A request type with
// none of `json`, `form` or `file` fields has no body.
func (g *Generator) requestBody(requestType reflect.Type) (*openapi3.RequestBodyRef, error) {
	for requestType.Kind() == reflect.Pointer {
		requestType = requestType.Elem()
	}
	if requestType.Kind() != reflect.Struct {
		return nil, nil
	}

	form := openapi3.NewObjectSchema()
	hasJSON, hasFiles := false, false

	for _, field := range fields(reflect.New(requestType).Elem()) {
		if tagName(field.StructField, "json") != "" {
			hasJSON = true
		}

		name := tagName(field.StructField, "form")
		if name == "" {
			name = tagName(field.StructField, "file")
		}
		if name == "" {
			continue
		}

		var schema *openapi3.SchemaRef
		if field.Type == fileHeaderType {
			hasFiles = true
			schema = openapi3.NewStringSchema().WithFormat("binary").NewRef()
		} else {
			var err error
			if schema, err = g.fieldSchema(field.StructField); err != nil {
				return nil, err
			}
		}

		form.WithPropertyRef(name, schema)
		if isRequired(field.StructField) || field.Type == fileHeaderType {
			form.Required = append(form.Required, name)
		}
	}

	body := openapi3.NewRequestBody().WithRequired(true)

	switch {
	case hasJSON:
		schema, err := g.schemaRef(requestType)
		if err != nil {
			return nil, err
		}
		body.WithJSONSchemaRef(schema)
	case hasFiles:
		body.WithContent(openapi3.NewContentWithSchema(form, []string{mimeMultipart}))
	case len(form.Properties) > 0:
		body.WithContent(openapi3.NewContentWithSchema(form, []string{mimeForm, mimeMultipart}))
	default:
		return nil, nil
	}

	return &openapi3.RequestBodyRef{Value: body}, nil
}

// schemaRef generates the inline schema of t. openapi3gen names every
// schema after its Go type, which would render as a dangling $ref.
func (g *Generator) schemaRef(t reflect.Type) (*openapi3.SchemaRef, error) {
	ref, err := g.schemas.GenerateSchemaRef(t)
	if err != nil {
		return nil, err
	}

	for r := range g.schemas.SchemaRefs {
		r.Ref = ""
	}

	return ref, nil
}

// fieldSchema generates the schema of a single field with its tag
// constraints applied.
func (g *Generator) fieldSchema(field reflect.StructField) (*openapi3.SchemaRef, error) {
	schema, err := g.schemaRef(field.Type)
	if err != nil {
		return nil, err
	}

	fieldType := field.Type
	for fieldType.Kind() == reflect.Pointer {
		fieldType = fieldType.Elem()
		schema.Value.Nullable = true
	}

	if err := customizeSchema(field.Name, fieldType, field.Tag, schema.Value); err != nil {
		return nil, err
	}

	return schema, nil
}

// customizeSchema maps `validate` and `example` tags onto schema, and marks
// `required` properties on object schemas.
func customizeSchema(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if e, ok := reflect.Zero(t).Interface().(validation.Enum); ok && t.Kind() == reflect.String {
		schema.Enum = nil
		for _, value := range e.Values() {
			schema.Enum = append(schema.Enum, value)
		}
	}

	if t.Kind() == reflect.Struct {
		for _, field := range fields(reflect.New(t).Elem()) {
			if name := tagName(field.StructField, "json"); name != "" && isRequired(field.StructField) {
				schema.Required = append(schema.Required, name)
			}
		}
	}

	for _, rule := range strings.Split(tag.Get("validate"), ",") {
		applyRule(schema, strings.TrimSpace(rule))
	}

	if example := tag.Get("example"); example != "" {
		schema.Example = parseExample(schema, example)
	}

	return nil
}

func applyRule(schema *openapi3.Schema, rule string) {
	name, param, _ := strings.Cut(rule, "=")

	switch name {
	case "email":
		schema.Format = "email"
		return
	case "uuid":
		schema.Format = "uuid"
		return
	case "url":
		schema.Format = "uri"
		return
	case "oneof":
		schema.Enum = nil
		for _, value := range strings.Fields(param) {
			schema.Enum = append(schema.Enum, value)
		}
		return
	}

	value, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return
	}

	if schema.Type.Is(openapi3.TypeString) {
		length := uint64(value)
		switch name {
		case "min":
			schema.MinLength = length
		case "max":
			schema.MaxLength = &length
		case "len":
			schema.MinLength = length
			schema.MaxLength = &length
		}
		return
	}

	switch name {
	case "min", "gte":
		schema.Min = &value
	case "max", "lte":
		schema.Max = &value
	case "gt":
		schema.Min = &value
		schema.ExclusiveMin = true
	case "lt":
		schema.Max = &value
		schema.ExclusiveMax = true
	}
}

func parseExample(schema *openapi3.Schema, example string) any {
	switch {
	case schema.Type.Is(openapi3.TypeInteger):
		if v, err := strconv.ParseInt(example, 10, 64); err == nil {
			return v
		}
	case schema.Type.Is(openapi3.TypeNumber):
		if v, err := strconv.ParseFloat(example, 64); err == nil {
			return v
		}
	case schema.Type.Is(openapi3.TypeBoolean):
		if v, err := strconv.ParseBool(example); err == nil {
			return v
		}
	}
	return example
}

// PathFromEcho converts Echo path parameters to OpenAPI templates:
//
//	"/person/detail/:person_id" -> "/person/detail/{person_id}"
func PathFromEcho(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

// JSON renders doc as indented JSON.
func JSON(doc *openapi3.T) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI document to JSON: %w", err)
	}
	return data, nil
}

// YAML renders doc as YAML.
func YAML(doc *openapi3.T) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI document to YAML: %w", err)
	}
	return data, nil
}

type field struct {
	reflect.StructField
	Value reflect.Value
}

// fields lists the exported fields of a struct value, flattening embedded
// structs. Pointers are followed; a nil pointer yields no fields.
func fields(v reflect.Value) []field {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v = reflect.New(v.Type().Elem()).Elem()
			continue
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var out []field
	for i := 0; i < v.NumField(); i++ {
		sf := v.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			out = append(out, fields(v.Field(i))...)
			continue
		}
		out = append(out, field{StructField: sf, Value: v.Field(i)})
	}
	return out
}

func tagName(field reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
	if name == "-" {
		return ""
	}
	return name
}

func isRequired(field reflect.StructField) bool {
	for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
		if strings.TrimSpace(rule) == "required" {
			return true
		}
	}
	return false
}
