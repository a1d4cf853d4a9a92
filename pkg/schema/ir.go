package schema

// Instance type names used by the generator and checker.
const (
	TypeObject  = "object"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Schema is the structural description published for a message type: the
// same artifact external consumers of the generated interface description
// see. It is a plain JSON-Schema-shaped tree; the zero value is an empty
// (unconstrained) schema.
type Schema struct {
	Ref         string            `json:"$ref,omitempty"`
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Enum        []any             `json:"enum,omitempty"`
	Required    []string          `json:"required,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty"`
	Items       *Schema           `json:"items,omitempty"`
	OneOf       []Schema          `json:"oneOf,omitempty"`

	// AdditionalProperties is either a bool (false rejects unknown members)
	// or a *Schema constraining map values.
	AdditionalProperties any `json:"additionalProperties,omitempty"`
}

// IsZero reports whether the schema carries no constraints at all.
func (s Schema) IsZero() bool {
	return s.Ref == "" && s.Type == "" && s.Description == "" &&
		len(s.Enum) == 0 && len(s.Required) == 0 &&
		len(s.Properties) == 0 && s.Items == nil && len(s.OneOf) == 0 &&
		s.AdditionalProperties == nil
}
