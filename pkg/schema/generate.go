package schema

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-msgschema/pkg/serde"
	"github.com/goliatone/go-msgschema/pkg/typedef"
)

// Generate produces the structural schema published for a type definition.
// Struct kinds become object schemas; enum kinds become a oneOf list with one
// alternative per variant, keyed under the definition's rename rule. The
// generated artifact is what downstream integrity checks and interface
// descriptions consume.
func Generate(def typedef.TypeDefinition) (Schema, error) {
	switch def.Kind {
	case typedef.KindStruct:
		s, err := objectSchema(def.Name, def.Fields, def.Annotations.DenyUnknownFields)
		if err != nil {
			return Schema{}, err
		}
		s.Description = def.Doc
		return s, nil
	case typedef.KindEnum:
		return enumSchema(def)
	default:
		return Schema{}, fmt.Errorf("schema: cannot generate a schema for %q: unsupported kind %q", def.Name, def.Kind)
	}
}

func enumSchema(def typedef.TypeDefinition) (Schema, error) {
	out := Schema{Description: def.Doc}
	if len(def.Variants) == 0 {
		// A variantless enum publishes no alternatives at all.
		return out, nil
	}

	out.OneOf = make([]Schema, 0, len(def.Variants))
	for _, v := range def.Variants {
		alt, err := variantSchema(def, v)
		if err != nil {
			return Schema{}, err
		}
		out.OneOf = append(out.OneOf, alt)
	}
	return out, nil
}

// variantSchema flattens one enum variant into its published alternative:
//
//   - unit variants serialize as a bare string, so the alternative is a
//     string schema enumerating exactly the variant key;
//   - struct-like, single-slot tuple and empty tuple variants fold their
//     payload under the variant key, leaving it the sole required member
//     (single-slot tuples and single-field structs are indistinguishable
//     here — the flattening drops tuple arity);
//   - tuple variants with two or more slots cannot fold under one key, so
//     every slot keeps its own required entry. Consumers that need exactly
//     one discriminant per alternative reject this encoding.
func variantSchema(def typedef.TypeDefinition, v typedef.Variant) (Schema, error) {
	key := serde.VariantKey(def.Annotations.RenameAll, v.Name)
	deny := def.Annotations.DenyUnknownFields

	switch v.Shape {
	case typedef.ShapeUnit:
		return Schema{Type: TypeString, Enum: []any{key}, Description: v.Doc}, nil
	case typedef.ShapeStruct:
		payload, err := objectSchema(def.Name+"."+v.Name, v.Fields, deny)
		if err != nil {
			return Schema{}, err
		}
		return wrapVariant(key, payload, v.Doc, deny), nil
	case typedef.ShapeTuple:
		switch len(v.Fields) {
		case 0:
			return wrapVariant(key, Schema{Type: TypeObject}, v.Doc, deny), nil
		case 1:
			payload, err := ForTypeRef(v.Fields[0].Type)
			if err != nil {
				return Schema{}, fmt.Errorf("schema: %s.%s: %w", def.Name, v.Name, err)
			}
			return wrapVariant(key, payload, v.Doc, deny), nil
		default:
			return tupleVariantSchema(def.Name, key, v, deny)
		}
	default:
		return Schema{}, fmt.Errorf("schema: %s.%s has unknown variant shape %q", def.Name, v.Name, v.Shape)
	}
}

// wrapVariant folds a payload under the variant key as an object alternative
// with exactly one required member.
func wrapVariant(key string, payload Schema, doc string, deny bool) Schema {
	out := Schema{
		Type:        TypeObject,
		Description: doc,
		Properties:  map[string]Schema{key: payload},
		Required:    []string{key},
	}
	if deny {
		out.AdditionalProperties = false
	}
	return out
}

// tupleVariantSchema handles tuple variants with two or more positional
// slots: slot zero takes the variant key, later slots get indexed keys, and
// every slot is required.
func tupleVariantSchema(owner, key string, v typedef.Variant, deny bool) (Schema, error) {
	out := Schema{
		Type:        TypeObject,
		Description: v.Doc,
		Properties:  make(map[string]Schema, len(v.Fields)),
	}
	for i, f := range v.Fields {
		slot := key
		if i > 0 {
			slot = fmt.Sprintf("%s_%d", key, i)
		}
		ref, err := ForTypeRef(f.Type)
		if err != nil {
			return Schema{}, fmt.Errorf("schema: %s.%s slot %d: %w", owner, v.Name, i, err)
		}
		out.Properties[slot] = ref
		out.Required = append(out.Required, slot)
	}
	if deny {
		out.AdditionalProperties = false
	}
	return out, nil
}

func objectSchema(owner string, fields []typedef.Field, deny bool) (Schema, error) {
	out := Schema{Type: TypeObject}
	if len(fields) > 0 {
		out.Properties = make(map[string]Schema, len(fields))
	}
	for _, f := range fields {
		ref, err := ForTypeRef(f.Type)
		if err != nil {
			return Schema{}, fmt.Errorf("schema: %s field %q: %w", owner, f.Name, err)
		}
		ref.Description = f.Doc
		out.Properties[f.Name] = ref
		if !f.Optional {
			out.Required = append(out.Required, f.Name)
		}
	}
	sort.Strings(out.Required)
	if deny {
		out.AdditionalProperties = false
	}
	return out, nil
}

// ForTypeRef maps a type reference onto its leaf schema. Named references
// become JSON pointers into the document's definitions section.
func ForTypeRef(ref typedef.TypeRef) (Schema, error) {
	switch {
	case ref.Primitive != "":
		instance, ok := primitiveTypes[ref.Primitive]
		if !ok {
			return Schema{}, fmt.Errorf("unknown primitive %q", ref.Primitive)
		}
		return Schema{Type: instance}, nil
	case ref.Named != "":
		return Schema{Ref: "#/definitions/" + ref.Named}, nil
	case ref.Array != nil:
		elem, err := ForTypeRef(*ref.Array)
		if err != nil {
			return Schema{}, err
		}
		return Schema{Type: TypeArray, Items: &elem}, nil
	case ref.Map != nil:
		value, err := ForTypeRef(*ref.Map)
		if err != nil {
			return Schema{}, err
		}
		return Schema{Type: TypeObject, AdditionalProperties: &value}, nil
	default:
		return Schema{}, fmt.Errorf("empty type reference")
	}
}

var primitiveTypes = map[string]string{
	typedef.PrimitiveString:  TypeString,
	typedef.PrimitiveBool:    TypeBoolean,
	typedef.PrimitiveInteger: TypeInteger,
	typedef.PrimitiveNumber:  TypeNumber,
}
