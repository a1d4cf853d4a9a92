// Package queryspec ties a query message's variants to their declared
// response schemas and verifies the two stay in agreement. The check never
// inspects the message declaration directly: it works off the generated
// structural schema, the same artifact consumers of the published interface
// description see, so the validated names are the names actually published.
package queryspec

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-msgschema/pkg/schema"
	"github.com/goliatone/go-msgschema/pkg/typedef"
)

// ResponseMap maps operation names to the structural schema of an example
// response. Keys must be unique; insertion order carries no meaning.
type ResponseMap map[string]schema.Schema

// QueryResponses is implemented by query message descriptors. QueryDefinition
// returns the message declaration (already normalized, so it carries its
// rename rule) and ResponseSchemasImpl returns the implementer's raw
// name-to-response mapping, one entry per declared variant. The raw mapping
// is unvalidated; ResponseSchemas is the checked entry point.
type QueryResponses interface {
	QueryDefinition() typedef.TypeDefinition
	ResponseSchemasImpl() ResponseMap
}

// ResponseSchemas validates the implementer's response map against the
// message's own generated schema and returns the map unchanged on success.
// Failures are authoring defects: either the message schema publishes an
// alternative with no unambiguous operation name, or the two name sets
// differ.
func ResponseSchemas(q QueryResponses) (ResponseMap, error) {
	responses := q.ResponseSchemasImpl()

	generated, err := schema.Generate(q.QueryDefinition())
	if err != nil {
		return nil, fmt.Errorf("queryspec: generate query message schema: %w", err)
	}

	if err := Check(generated, responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// Check verifies an already-generated query message schema against a declared
// response map. It succeeds exactly when the set of operation names derived
// from the schema equals the map's key set.
func Check(msgSchema schema.Schema, responses ResponseMap) error {
	declared := make([]string, 0, len(responses))
	for name := range responses {
		declared = append(declared, name)
	}
	sort.Strings(declared)

	published, err := OperationNames(msgSchema)
	if err != nil {
		return err
	}

	if !equalNames(published, declared) {
		return &InconsistentQueriesError{QueryMsg: published, Responses: declared}
	}
	return nil
}

// OperationNames derives the sorted, deduplicated set of operation names a
// query message schema publishes. A schema with no oneOf list publishes no
// operations.
func OperationNames(msgSchema schema.Schema) ([]string, error) {
	if len(msgSchema.OneOf) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(msgSchema.OneOf))
	names := make([]string, 0, len(msgSchema.OneOf))
	for i, alt := range msgSchema.OneOf {
		name, err := OperationName(alt)
		if err != nil {
			return nil, fmt.Errorf("alternative %d: %w", i, err)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// alternativeShape is the closed set of encodings a query variant can take in
// the published schema. Anything outside the set is rejected rather than
// guessed at.
type alternativeShape int

const (
	shapeInvalid alternativeShape = iota
	shapeObject                   // struct-like or tuple-like variant folded under its key
	shapeLiteral                  // unit-like variant published as a string literal
)

func classify(alt schema.Schema) alternativeShape {
	switch alt.Type {
	case schema.TypeObject:
		return shapeObject
	case schema.TypeString:
		return shapeLiteral
	default:
		return shapeInvalid
	}
}

// OperationName extracts the operation name from a single oneOf alternative.
// Object alternatives must require exactly one member; string alternatives
// must enumerate exactly one literal. Everything else means the schema lost
// too much structure to identify the variant, which is an error here, never
// a guess.
func OperationName(alt schema.Schema) (string, error) {
	switch classify(alt) {
	case shapeObject:
		if n := len(alt.Required); n != 1 {
			return "", fmt.Errorf("%w: object alternative requires %d members, want exactly 1", ErrInvalidQueryMsgSchema, n)
		}
		return alt.Required[0], nil
	case shapeLiteral:
		if n := len(alt.Enum); n != 1 {
			return "", fmt.Errorf("%w: string alternative enumerates %d values, want exactly 1", ErrInvalidQueryMsgSchema, n)
		}
		name, ok := alt.Enum[0].(string)
		if !ok {
			return "", fmt.Errorf("%w: string alternative enumerates a non-string value", ErrInvalidQueryMsgSchema)
		}
		return name, nil
	default:
		return "", fmt.Errorf("%w: alternative has instance type %q", ErrInvalidQueryMsgSchema, alt.Type)
	}
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
