package typedef

import (
	"fmt"
	"strings"
)

// Primitive leaf names understood by the schema generator.
const (
	PrimitiveString  = "string"
	PrimitiveBool    = "bool"
	PrimitiveInteger = "integer"
	PrimitiveNumber  = "number"
)

// TypeRef references the type of a field or variant payload. Exactly one of
// the members is set; refs are immutable once constructed.
type TypeRef struct {
	// Primitive holds one of the Primitive* leaf names.
	Primitive string
	// Named points at another declared type by name.
	Named string
	// Array wraps the element type of a list.
	Array *TypeRef
	// Map wraps the value type of a string-keyed map.
	Map *TypeRef
}

// Primitive constructs a leaf reference.
func Primitive(name string) TypeRef {
	return TypeRef{Primitive: name}
}

// Named constructs a reference to a declared type.
func Named(name string) TypeRef {
	return TypeRef{Named: name}
}

// ArrayOf constructs a list reference.
func ArrayOf(elem TypeRef) TypeRef {
	return TypeRef{Array: &elem}
}

// MapOf constructs a string-keyed map reference.
func MapOf(value TypeRef) TypeRef {
	return TypeRef{Map: &value}
}

// IsZero reports whether the reference is unset.
func (r TypeRef) IsZero() bool {
	return r.Primitive == "" && r.Named == "" && r.Array == nil && r.Map == nil
}

// String renders the reference in declaration-expression form.
func (r TypeRef) String() string {
	switch {
	case r.Primitive != "":
		return r.Primitive
	case r.Named != "":
		return r.Named
	case r.Array != nil:
		return "[]" + r.Array.String()
	case r.Map != nil:
		return "map[string]" + r.Map.String()
	default:
		return ""
	}
}

// primitiveAliases folds declaration-side spellings onto the canonical leaf
// names so authors can write Go-flavoured expressions.
var primitiveAliases = map[string]string{
	"string":  PrimitiveString,
	"bool":    PrimitiveBool,
	"boolean": PrimitiveBool,
	"integer": PrimitiveInteger,
	"int":     PrimitiveInteger,
	"int32":   PrimitiveInteger,
	"int64":   PrimitiveInteger,
	"uint":    PrimitiveInteger,
	"uint32":  PrimitiveInteger,
	"uint64":  PrimitiveInteger,
	"uint128": PrimitiveInteger,
	"number":  PrimitiveNumber,
	"float32": PrimitiveNumber,
	"float64": PrimitiveNumber,
}

// ParseTypeRef parses a declaration type expression such as "string",
// "[]Coin" or "map[string]uint64".
func ParseTypeRef(expr string) (TypeRef, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return TypeRef{}, fmt.Errorf("typedef: empty type expression")
	}

	if rest, ok := strings.CutPrefix(trimmed, "[]"); ok {
		elem, err := ParseTypeRef(rest)
		if err != nil {
			return TypeRef{}, err
		}
		return ArrayOf(elem), nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "map[string]"); ok {
		value, err := ParseTypeRef(rest)
		if err != nil {
			return TypeRef{}, err
		}
		return MapOf(value), nil
	}

	if canonical, ok := primitiveAliases[strings.ToLower(trimmed)]; ok {
		return Primitive(canonical), nil
	}

	if !isIdentifier(trimmed) {
		return TypeRef{}, fmt.Errorf("typedef: invalid type expression %q", expr)
	}
	return Named(trimmed), nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}
