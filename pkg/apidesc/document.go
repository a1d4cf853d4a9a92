// Package apidesc assembles the published interface description for a
// contract's query API: an in-memory OpenAPI document exposing one operation
// per validated query, with the variant's request shape and the declared
// response schema. Persisting the document is the caller's concern.
package apidesc

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-msgschema/pkg/queryspec"
	"github.com/goliatone/go-msgschema/pkg/schema"
)

// Info carries the document-level metadata.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Build validates the response map against the query message schema and, on
// success, renders the OpenAPI description. The integrity check runs here so
// a description can never be built from a mapping the schema disagrees with.
func Build(info Info, msgSchema schema.Schema, responses queryspec.ResponseMap) (*openapi3.T, error) {
	if info.Title == "" {
		return nil, errors.New("apidesc: document title is required")
	}
	if err := queryspec.Check(msgSchema, responses); err != nil {
		return nil, err
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, alt := range msgSchema.OneOf {
		// Check already proved every alternative yields exactly one name.
		name, err := queryspec.OperationName(alt)
		if err != nil {
			return nil, err
		}
		doc.Paths.Set("/"+name, &openapi3.PathItem{
			Post: operation(name, alt, responses[name]),
		})
	}
	return doc, nil
}

func operation(name string, request, response schema.Schema) *openapi3.Operation {
	resp := openapi3.NewResponse().
		WithDescription(fmt.Sprintf("response for the %q query", name))
	if ref := convertRef(response); ref != nil {
		resp = resp.WithContent(openapi3.NewContentWithSchemaRef(ref, []string{"application/json"}))
	}

	op := &openapi3.Operation{
		OperationID: name,
		Summary:     name,
		Description: request.Description,
		Responses:   openapi3.NewResponses(openapi3.WithStatus(200, &openapi3.ResponseRef{Value: resp})),
	}
	if ref := convertRef(request); ref != nil {
		body := openapi3.NewRequestBody().
			WithContent(openapi3.NewContentWithSchemaRef(ref, []string{"application/json"}))
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}
	return op
}

// convertRef maps the internal schema tree onto kin-openapi's representation.
// Named references survive as $ref pointers; empty schemas collapse to nil.
func convertRef(s schema.Schema) *openapi3.SchemaRef {
	if s.IsZero() {
		return nil
	}
	if s.Ref != "" {
		return openapi3.NewSchemaRef(s.Ref, nil)
	}
	return &openapi3.SchemaRef{Value: convert(s)}
}

func convert(s schema.Schema) *openapi3.Schema {
	out := &openapi3.Schema{
		Description: s.Description,
	}
	if s.Type != "" {
		out.Type = &openapi3.Types{s.Type}
	}
	if len(s.Enum) > 0 {
		out.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	if len(s.Properties) > 0 {
		out.Properties = make(openapi3.Schemas, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = convertRef(prop)
		}
	}
	if s.Items != nil {
		out.Items = convertRef(*s.Items)
	}
	if len(s.OneOf) > 0 {
		out.OneOf = make(openapi3.SchemaRefs, 0, len(s.OneOf))
		for _, alt := range s.OneOf {
			out.OneOf = append(out.OneOf, convertRef(alt))
		}
	}
	switch extra := s.AdditionalProperties.(type) {
	case bool:
		has := extra
		out.AdditionalProperties = openapi3.AdditionalProperties{Has: &has}
	case *schema.Schema:
		if extra != nil {
			out.AdditionalProperties = openapi3.AdditionalProperties{Schema: convertRef(*extra)}
		}
	}
	return out
}
