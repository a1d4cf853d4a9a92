package typedef

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// declarationFile mirrors the on-disk declaration document. JSON and YAML
// spellings are both accepted.
type declarationFile struct {
	Types []declarationType `json:"types" yaml:"types"`
}

type declarationType struct {
	Name      string               `json:"name" yaml:"name"`
	Kind      string               `json:"kind" yaml:"kind"`
	Doc       string               `json:"doc" yaml:"doc"`
	Generics  []string             `json:"generics" yaml:"generics"`
	RenameAll string               `json:"renameAll" yaml:"renameAll"`
	Fields    []declarationField   `json:"fields" yaml:"fields"`
	Variants  []declarationVariant `json:"variants" yaml:"variants"`
}

type declarationField struct {
	Name     string `json:"name" yaml:"name"`
	Doc      string `json:"doc" yaml:"doc"`
	Type     string `json:"type" yaml:"type"`
	Optional bool   `json:"optional" yaml:"optional"`
}

type declarationVariant struct {
	Name   string             `json:"name" yaml:"name"`
	Doc    string             `json:"doc" yaml:"doc"`
	Shape  string             `json:"shape" yaml:"shape"`
	Fields []declarationField `json:"fields" yaml:"fields"`
}

// ParseDeclarations decodes a JSON or YAML declaration document into
// validated type definitions. Duplicate type names, unknown kinds, and
// malformed variant shapes are rejected at load time so later passes can
// assume structurally sound input.
func ParseDeclarations(data []byte) ([]TypeDefinition, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("typedef: document declares no types")
	}

	seen := make(map[string]struct{}, len(doc.Types))
	defs := make([]TypeDefinition, 0, len(doc.Types))
	for _, raw := range doc.Types {
		def, err := normalizeDeclaration(raw)
		if err != nil {
			return nil, err
		}
		if _, exists := seen[def.Name]; exists {
			return nil, fmt.Errorf("typedef: duplicate type %q", def.Name)
		}
		seen[def.Name] = struct{}{}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseDocument(data []byte) (declarationFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return declarationFile{}, fmt.Errorf("typedef: document is empty")
	}

	var doc declarationFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return declarationFile{}, fmt.Errorf("typedef: document is not valid JSON or YAML")
}

func normalizeDeclaration(raw declarationType) (TypeDefinition, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return TypeDefinition{}, fmt.Errorf("typedef: declaration is missing a name")
	}

	def := TypeDefinition{
		Name:     name,
		Doc:      raw.Doc,
		Generics: append([]string(nil), raw.Generics...),
		Annotations: Annotations{
			RenameAll: strings.TrimSpace(raw.RenameAll),
		},
	}

	switch Kind(strings.TrimSpace(raw.Kind)) {
	case KindStruct:
		def.Kind = KindStruct
		if len(raw.Variants) > 0 {
			return TypeDefinition{}, fmt.Errorf("typedef: struct %q declares variants", name)
		}
		fields, err := normalizeFields(name, raw.Fields, true)
		if err != nil {
			return TypeDefinition{}, err
		}
		def.Fields = fields
	case KindEnum:
		def.Kind = KindEnum
		if len(raw.Fields) > 0 {
			return TypeDefinition{}, fmt.Errorf("typedef: enum %q declares bare fields", name)
		}
		variants, err := normalizeVariants(name, raw.Variants)
		if err != nil {
			return TypeDefinition{}, err
		}
		def.Variants = variants
	case KindUnion:
		// Loaded as-is; the serde normalizer is the component that rejects it.
		def.Kind = KindUnion
	default:
		return TypeDefinition{}, fmt.Errorf("typedef: type %q has unknown kind %q", name, raw.Kind)
	}

	return def, nil
}

func normalizeFields(owner string, raw []declarationField, named bool) ([]Field, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(raw))
	fields := make([]Field, 0, len(raw))
	for i, rf := range raw {
		fieldName := strings.TrimSpace(rf.Name)
		if named && fieldName == "" {
			return nil, fmt.Errorf("typedef: %s field %d is missing a name", owner, i)
		}
		if !named && fieldName != "" {
			return nil, fmt.Errorf("typedef: %s positional field %d must not be named", owner, i)
		}
		if fieldName != "" {
			if _, exists := seen[fieldName]; exists {
				return nil, fmt.Errorf("typedef: %s declares duplicate field %q", owner, fieldName)
			}
			seen[fieldName] = struct{}{}
		}

		ref, err := ParseTypeRef(rf.Type)
		if err != nil {
			return nil, fmt.Errorf("typedef: %s field %q: %w", owner, fieldName, err)
		}
		fields = append(fields, Field{
			Name:     fieldName,
			Doc:      rf.Doc,
			Type:     ref,
			Optional: rf.Optional,
		})
	}
	return fields, nil
}

func normalizeVariants(owner string, raw []declarationVariant) ([]Variant, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(raw))
	variants := make([]Variant, 0, len(raw))
	for _, rv := range raw {
		name := strings.TrimSpace(rv.Name)
		if name == "" {
			return nil, fmt.Errorf("typedef: enum %q declares an unnamed variant", owner)
		}
		if _, exists := seen[name]; exists {
			return nil, fmt.Errorf("typedef: enum %q declares duplicate variant %q", owner, name)
		}
		seen[name] = struct{}{}

		shape, err := variantShape(owner, rv)
		if err != nil {
			return nil, err
		}
		fields, err := normalizeFields(owner+"."+name, rv.Fields, shape == ShapeStruct)
		if err != nil {
			return nil, err
		}
		variants = append(variants, Variant{
			Name:   name,
			Doc:    rv.Doc,
			Shape:  shape,
			Fields: fields,
		})
	}
	return variants, nil
}

// variantShape resolves an explicit shape or infers one: no fields means
// unit, named fields mean struct, unnamed fields mean tuple.
func variantShape(owner string, raw declarationVariant) (VariantShape, error) {
	switch VariantShape(strings.TrimSpace(raw.Shape)) {
	case ShapeUnit:
		if len(raw.Fields) > 0 {
			return "", fmt.Errorf("typedef: enum %q unit variant %q declares fields", owner, raw.Name)
		}
		return ShapeUnit, nil
	case ShapeTuple:
		return ShapeTuple, nil
	case ShapeStruct:
		return ShapeStruct, nil
	case "":
	default:
		return "", fmt.Errorf("typedef: enum %q variant %q has unknown shape %q", owner, raw.Name, raw.Shape)
	}

	if len(raw.Fields) == 0 {
		return ShapeUnit, nil
	}
	for _, f := range raw.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return ShapeTuple, nil
		}
	}
	return ShapeStruct, nil
}
