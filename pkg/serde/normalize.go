package serde

import (
	"github.com/stoewer/go-strcase"

	"github.com/goliatone/go-msgschema/pkg/typedef"
)

// Capability names attached to every normalized message definition.
const (
	DeriveSerialize   = "serialize"
	DeriveDeserialize = "deserialize"
	DeriveClone       = "clone"
	DeriveDebug       = "debug"
	DeriveEq          = "eq"
	DeriveSchema      = "schema"
)

// Rename rules understood by VariantKey.
const (
	RenameSnakeCase = "snake_case"
	RenameKebabCase = "kebab-case"
)

// deriveBundle is the fixed capability set every message type receives.
var deriveBundle = []string{
	DeriveSerialize,
	DeriveDeserialize,
	DeriveClone,
	DeriveDebug,
	DeriveEq,
	DeriveSchema,
}

// Normalize rewrites a message definition with the standard serde bundle:
// the full derive set plus deny-unknown-fields, and for enums the snake_case
// variant rename rule. Fields, variants, generics and docs pass through
// untouched; the input is never mutated.
//
// Unions have no serialization rules and indicate an authoring defect, so
// Normalize panics on them: the generation pass cannot continue.
func Normalize(def typedef.TypeDefinition) typedef.TypeDefinition {
	out := def.Clone()

	switch def.Kind {
	case typedef.KindStruct:
	case typedef.KindEnum:
		out.Annotations.RenameAll = RenameSnakeCase
	case typedef.KindUnion:
		panic("serde: unions are not supported")
	default:
		panic("serde: unknown type kind " + string(def.Kind))
	}

	out.Annotations.Derives = mergeDerives(out.Annotations.Derives)
	out.Annotations.DenyUnknownFields = true
	return out
}

// mergeDerives appends the standard bundle to any author-declared derives,
// keeping first occurrence order and dropping duplicates.
func mergeDerives(existing []string) []string {
	out := make([]string, 0, len(existing)+len(deriveBundle))
	seen := make(map[string]struct{}, len(existing)+len(deriveBundle))
	for _, d := range existing {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	for _, d := range deriveBundle {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// VariantKey renders a variant name under the definition's rename rule. An
// empty or unrecognized rule leaves the name untouched, matching serde's
// behavior when no rename attribute is present.
func VariantKey(rule, name string) string {
	switch rule {
	case RenameSnakeCase:
		return strcase.SnakeCase(name)
	case RenameKebabCase:
		return strcase.KebabCase(name)
	default:
		return name
	}
}
