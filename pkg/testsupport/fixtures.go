// Package testsupport provides the canonical message-definition fixtures the
// package tests share, so every suite exercises the same declarations.
package testsupport

import (
	"github.com/goliatone/go-msgschema/pkg/schema"
	"github.com/goliatone/go-msgschema/pkg/typedef"
)

// GoodQueryMsg covers every variant shape the checker accepts: a struct-like
// variant, a single-slot tuple, an empty struct, a unit variant and an empty
// tuple.
func GoodQueryMsg() typedef.TypeDefinition {
	return typedef.TypeDefinition{
		Name: "QueryMsg",
		Kind: typedef.KindEnum,
		Variants: []typedef.Variant{
			{
				Name:  "BalanceFor",
				Shape: typedef.ShapeStruct,
				Fields: []typedef.Field{
					{Name: "account", Type: typedef.Primitive(typedef.PrimitiveString)},
				},
			},
			{
				Name:  "AccountIdFor",
				Shape: typedef.ShapeTuple,
				Fields: []typedef.Field{
					{Type: typedef.Primitive(typedef.PrimitiveString)},
				},
			},
			{Name: "Supply", Shape: typedef.ShapeStruct},
			{Name: "Liquidity", Shape: typedef.ShapeUnit},
			{Name: "AccountCount", Shape: typedef.ShapeTuple},
		},
	}
}

// EmptyQueryMsg has no variants at all.
func EmptyQueryMsg() typedef.TypeDefinition {
	return typedef.TypeDefinition{Name: "EmptyMsg", Kind: typedef.KindEnum}
}

// KebabQueryMsg carries a kebab-case rename rule, so its published variant
// keys never match a snake_case response map.
func KebabQueryMsg() typedef.TypeDefinition {
	return typedef.TypeDefinition{
		Name: "BadMsg",
		Kind: typedef.KindEnum,
		Annotations: typedef.Annotations{
			RenameAll: "kebab-case",
		},
		Variants: []typedef.Variant{
			{
				Name:  "BalanceFor",
				Shape: typedef.ShapeStruct,
				Fields: []typedef.Field{
					{Name: "account", Type: typedef.Primitive(typedef.PrimitiveString)},
				},
			},
		},
	}
}

// AmbiguousQueryMsg declares a tuple variant with two positional slots, an
// encoding the integrity checker must reject.
func AmbiguousQueryMsg() typedef.TypeDefinition {
	return typedef.TypeDefinition{
		Name: "AmbiguousMsg",
		Kind: typedef.KindEnum,
		Variants: []typedef.Variant{
			{
				Name:  "PairFor",
				Shape: typedef.ShapeTuple,
				Fields: []typedef.Field{
					{Type: typedef.Primitive(typedef.PrimitiveString)},
					{Type: typedef.Primitive(typedef.PrimitiveString)},
				},
			},
		},
	}
}

// InstantiateMsg is the struct-kind fixture.
func InstantiateMsg() typedef.TypeDefinition {
	return typedef.TypeDefinition{
		Name: "InstantiateMsg",
		Kind: typedef.KindStruct,
		Fields: []typedef.Field{
			{Name: "verifier", Type: typedef.Primitive(typedef.PrimitiveString)},
			{Name: "beneficiary", Type: typedef.Primitive(typedef.PrimitiveString)},
		},
	}
}

// UnionMsg is the unsupported construct the serde normalizer must abort on.
func UnionMsg() typedef.TypeDefinition {
	return typedef.TypeDefinition{Name: "Overlay", Kind: typedef.KindUnion}
}

// Uint128Schema is the stand-in response schema used across the query tests.
func Uint128Schema() schema.Schema {
	return schema.Schema{Type: schema.TypeInteger, Description: "u128 amount"}
}
