package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-msgschema/pkg/schema"
	"github.com/goliatone/go-msgschema/pkg/serde"
	"github.com/goliatone/go-msgschema/pkg/testsupport"
	"github.com/goliatone/go-msgschema/pkg/typedef"
)

func TestGenerateStruct(t *testing.T) {
	def := serde.Normalize(testsupport.InstantiateMsg())

	got, err := schema.Generate(def)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := schema.Schema{
		Type: schema.TypeObject,
		Properties: map[string]schema.Schema{
			"verifier":    {Type: schema.TypeString},
			"beneficiary": {Type: schema.TypeString},
		},
		Required:             []string{"beneficiary", "verifier"},
		AdditionalProperties: false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("struct schema mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateStructOptionalFieldsNotRequired(t *testing.T) {
	def := serde.Normalize(typedef.TypeDefinition{
		Name: "Config",
		Kind: typedef.KindStruct,
		Fields: []typedef.Field{
			{Name: "owner", Type: typedef.Primitive(typedef.PrimitiveString)},
			{Name: "expires", Type: typedef.Primitive(typedef.PrimitiveInteger), Optional: true},
		},
	})

	got, err := schema.Generate(def)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"owner"}, got.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateEnumAlternatives(t *testing.T) {
	def := serde.Normalize(testsupport.GoodQueryMsg())

	got, err := schema.Generate(def)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got.OneOf) != 5 {
		t.Fatalf("expected 5 alternatives, got %d", len(got.OneOf))
	}

	// BalanceFor { account } folds the payload object under its key.
	balance := got.OneOf[0]
	if diff := cmp.Diff([]string{"balance_for"}, balance.Required); diff != "" {
		t.Fatalf("struct variant required mismatch (-want +got):\n%s", diff)
	}
	payload := balance.Properties["balance_for"]
	if diff := cmp.Diff([]string{"account"}, payload.Required); diff != "" {
		t.Fatalf("struct variant payload mismatch (-want +got):\n%s", diff)
	}

	// AccountIdFor(string) folds its single slot under the key.
	accountID := got.OneOf[1]
	if diff := cmp.Diff([]string{"account_id_for"}, accountID.Required); diff != "" {
		t.Fatalf("tuple variant required mismatch (-want +got):\n%s", diff)
	}
	if accountID.Properties["account_id_for"].Type != schema.TypeString {
		t.Fatalf("tuple payload should be the slot schema, got %+v", accountID.Properties["account_id_for"])
	}

	// Supply {} is an empty object payload.
	supply := got.OneOf[2]
	if diff := cmp.Diff([]string{"supply"}, supply.Required); diff != "" {
		t.Fatalf("empty struct variant mismatch (-want +got):\n%s", diff)
	}

	// Liquidity is published as a string literal.
	liquidity := got.OneOf[3]
	want := schema.Schema{Type: schema.TypeString, Enum: []any{"liquidity"}}
	if diff := cmp.Diff(want, liquidity); diff != "" {
		t.Fatalf("unit variant mismatch (-want +got):\n%s", diff)
	}

	// AccountCount() behaves like an empty payload under its key.
	count := got.OneOf[4]
	if diff := cmp.Diff([]string{"account_count"}, count.Required); diff != "" {
		t.Fatalf("empty tuple variant mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateEnumWithoutVariants(t *testing.T) {
	got, err := schema.Generate(serde.Normalize(testsupport.EmptyQueryMsg()))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got.OneOf) != 0 {
		t.Fatalf("variantless enum must publish no alternatives, got %d", len(got.OneOf))
	}
}

func TestGenerateRespectsRenameRule(t *testing.T) {
	got, err := schema.Generate(testsupport.KebabQueryMsg())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"balance-for"}, got.OneOf[0].Required); diff != "" {
		t.Fatalf("kebab-case key mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateMultiSlotTuple(t *testing.T) {
	got, err := schema.Generate(serde.Normalize(testsupport.AmbiguousQueryMsg()))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	alt := got.OneOf[0]
	if diff := cmp.Diff([]string{"pair_for", "pair_for_1"}, alt.Required); diff != "" {
		t.Fatalf("multi-slot tuple must keep one required entry per slot (-want +got):\n%s", diff)
	}
}

func TestGenerateUnionFails(t *testing.T) {
	if _, err := schema.Generate(testsupport.UnionMsg()); err == nil {
		t.Fatal("expected error for a union definition")
	}
}

func TestForTypeRef(t *testing.T) {
	cases := []struct {
		ref  typedef.TypeRef
		want schema.Schema
	}{
		{typedef.Primitive(typedef.PrimitiveString), schema.Schema{Type: schema.TypeString}},
		{typedef.Primitive(typedef.PrimitiveBool), schema.Schema{Type: schema.TypeBoolean}},
		{typedef.Primitive(typedef.PrimitiveInteger), schema.Schema{Type: schema.TypeInteger}},
		{typedef.Primitive(typedef.PrimitiveNumber), schema.Schema{Type: schema.TypeNumber}},
		{typedef.Named("Coin"), schema.Schema{Ref: "#/definitions/Coin"}},
		{
			typedef.ArrayOf(typedef.Named("Coin")),
			schema.Schema{Type: schema.TypeArray, Items: &schema.Schema{Ref: "#/definitions/Coin"}},
		},
	}

	for _, tc := range cases {
		got, err := schema.ForTypeRef(tc.ref)
		if err != nil {
			t.Fatalf("ForTypeRef(%s): %v", tc.ref, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ForTypeRef(%s) mismatch (-want +got):\n%s", tc.ref, diff)
		}
	}
}

func TestForTypeRefErrors(t *testing.T) {
	if _, err := schema.ForTypeRef(typedef.TypeRef{}); err == nil {
		t.Fatal("expected error for empty reference")
	}
	if _, err := schema.ForTypeRef(typedef.Primitive("decimal")); err == nil {
		t.Fatal("expected error for unknown primitive")
	}
}
