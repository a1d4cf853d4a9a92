package serde_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-msgschema/pkg/serde"
	"github.com/goliatone/go-msgschema/pkg/testsupport"
	"github.com/goliatone/go-msgschema/pkg/typedef"
)

var wantDerives = []string{"serialize", "deserialize", "clone", "debug", "eq", "schema"}

func TestNormalizeStruct(t *testing.T) {
	input := testsupport.InstantiateMsg()
	input.Generics = []string{"T"}
	input.Doc = "instantiation payload"

	out := serde.Normalize(input)

	if diff := cmp.Diff(wantDerives, out.Annotations.Derives); diff != "" {
		t.Fatalf("derive bundle mismatch (-want +got):\n%s", diff)
	}
	if !out.Annotations.DenyUnknownFields {
		t.Fatal("expected deny-unknown-fields to be set")
	}
	if out.Annotations.RenameAll != "" {
		t.Fatalf("struct must not get a rename rule, got %q", out.Annotations.RenameAll)
	}

	// Everything except the annotations passes through untouched.
	got := out
	got.Annotations = input.Annotations
	if diff := cmp.Diff(input, got); diff != "" {
		t.Fatalf("structure changed during normalization (-want +got):\n%s", diff)
	}
}

func TestNormalizeEnum(t *testing.T) {
	out := serde.Normalize(testsupport.GoodQueryMsg())

	if out.Annotations.RenameAll != serde.RenameSnakeCase {
		t.Fatalf("expected snake_case rename rule, got %q", out.Annotations.RenameAll)
	}
	if diff := cmp.Diff(wantDerives, out.Annotations.Derives); diff != "" {
		t.Fatalf("derive bundle mismatch (-want +got):\n%s", diff)
	}
	if !out.Annotations.DenyUnknownFields {
		t.Fatal("expected deny-unknown-fields to be set")
	}
	if diff := cmp.Diff(testsupport.GoodQueryMsg().Variants, out.Variants); diff != "" {
		t.Fatalf("variants changed during normalization (-want +got):\n%s", diff)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := testsupport.GoodQueryMsg()
	serde.Normalize(input)

	if diff := cmp.Diff(testsupport.GoodQueryMsg(), input); diff != "" {
		t.Fatalf("input definition mutated (-want +got):\n%s", diff)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	once := serde.Normalize(testsupport.GoodQueryMsg())
	twice := serde.Normalize(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second normalization changed the definition (-want +got):\n%s", diff)
	}
}

func TestNormalizeKeepsAuthorDerives(t *testing.T) {
	input := testsupport.InstantiateMsg()
	input.Annotations.Derives = []string{"ord", "clone"}

	out := serde.Normalize(input)

	want := []string{"ord", "clone", "serialize", "deserialize", "debug", "eq", "schema"}
	if diff := cmp.Diff(want, out.Annotations.Derives); diff != "" {
		t.Fatalf("derive merge mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeUnionPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Normalize to panic on a union definition")
		}
		if r != "serde: unions are not supported" {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()

	serde.Normalize(testsupport.UnionMsg())
}

func TestVariantKey(t *testing.T) {
	cases := []struct {
		rule string
		name string
		want string
	}{
		{serde.RenameSnakeCase, "BalanceFor", "balance_for"},
		{serde.RenameSnakeCase, "AccountIdFor", "account_id_for"},
		{serde.RenameKebabCase, "BalanceFor", "balance-for"},
		{"", "BalanceFor", "BalanceFor"},
		{"screaming", "BalanceFor", "BalanceFor"},
	}

	for _, tc := range cases {
		if got := serde.VariantKey(tc.rule, tc.name); got != tc.want {
			t.Fatalf("VariantKey(%q, %q) = %q, want %q", tc.rule, tc.name, got, tc.want)
		}
	}
}

func TestNormalizeUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Normalize to panic on an unknown kind")
		}
	}()

	serde.Normalize(typedef.TypeDefinition{Name: "Mystery", Kind: typedef.Kind("tagged")})
}
