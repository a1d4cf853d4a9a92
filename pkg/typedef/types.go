package typedef

// Kind identifies the shape of a declared type.
type Kind string

const (
	// KindStruct marks a product type with named fields.
	KindStruct Kind = "struct"
	// KindEnum marks a sum type whose variants are mutually exclusive.
	KindEnum Kind = "enum"
	// KindUnion marks an untagged overlay type. The toolkit has no rules for
	// unions; the serde normalizer aborts on them.
	KindUnion Kind = "union"
)

// VariantShape identifies how an enum variant carries its payload.
type VariantShape string

const (
	// ShapeUnit is a bare variant with no payload.
	ShapeUnit VariantShape = "unit"
	// ShapeTuple is a variant with positional, unnamed payload fields.
	ShapeTuple VariantShape = "tuple"
	// ShapeStruct is a variant with named payload fields.
	ShapeStruct VariantShape = "struct"
)

// TypeDefinition is the abstract description of a message type as declared by
// a contract author. It exists only during a generation pass: consumers treat
// it as immutable and derive rewritten copies via Clone.
type TypeDefinition struct {
	Name        string
	Doc         string
	Generics    []string
	Kind        Kind
	Fields      []Field   // struct kinds only
	Variants    []Variant // enum kinds only
	Annotations Annotations
}

// Field is a single named (or, inside tuple variants, positional) member.
type Field struct {
	Name     string
	Doc      string
	Type     TypeRef
	Optional bool
}

// Variant is one alternative of an enum definition.
type Variant struct {
	Name   string
	Doc    string
	Shape  VariantShape
	Fields []Field
}

// Annotations carries the serialization directives attached to a definition.
// The serde normalizer populates these; declaration documents may pre-seed
// them (e.g. a custom rename rule).
type Annotations struct {
	// Derives lists the capability names the generated code must implement.
	Derives []string
	// DenyUnknownFields rejects undeclared members during deserialization.
	DenyUnknownFields bool
	// RenameAll is the case convention applied to variant keys when the
	// definition is serialized, e.g. "snake_case".
	RenameAll string
}

// Clone returns a deep copy so rewrites never alias the input definition.
func (d TypeDefinition) Clone() TypeDefinition {
	out := d
	out.Generics = append([]string(nil), d.Generics...)
	out.Fields = cloneFields(d.Fields)
	if d.Variants != nil {
		out.Variants = make([]Variant, len(d.Variants))
		for i, v := range d.Variants {
			cloned := v
			cloned.Fields = cloneFields(v.Fields)
			out.Variants[i] = cloned
		}
	}
	out.Annotations.Derives = append([]string(nil), d.Annotations.Derives...)
	return out
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
