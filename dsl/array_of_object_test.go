package dsl_test

import (
	"context"
	"testing"

	g "github.com/reoring/yml2vocab/dsl"
	"github.com/reoring/yml2vocab/schema"
)

// TestArrayOfObject_Valid covers an array of strict objects.
func TestArrayOfObject_Valid(t *testing.T) {
	ctx := context.Background()

	item := g.Object().
		Field("id", g.String()).Required().
		Field("label", g.String()).Required().
		UnknownStrict().
		MustBuild()

	s := g.Object().
		Field("class", g.Array(item)).
		UnknownStrict().
		MustBuild()

	err := s.Validate(ctx, map[string]any{
		"class": []any{
			map[string]any{"id": "Dog", "label": "Dog"},
			map[string]any{"id": "Cat", "label": "Cat"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

// TestArrayOfObject_ElementIssues reports each element under its index.
func TestArrayOfObject_ElementIssues(t *testing.T) {
	ctx := context.Background()

	item := g.Object().
		Field("id", g.String()).Required().
		UnknownStrict().
		MustBuild()
	s := g.Object().Field("class", g.Array(item)).MustBuild()

	err := s.Validate(ctx, map[string]any{
		"class": []any{map[string]any{"id": 1}, "Dog", map[string]any{"id": "ok", "x": true}},
	})
	want := []string{"invalid_type /class/0/id", "invalid_type /class/1", "unknown_key /class/2/x"}
	if got := paths(err); !equal(got, want) {
		t.Fatalf("paths mismatch\n got=%v\nwant=%v", got, want)
	}

	if it := firstIssue(t, s.Validate(ctx, map[string]any{"class": "Dog"})); it.Code != schema.CodeInvalidType || it.Path != "/class" {
		t.Fatalf("want invalid_type at /class, got %+v", it)
	}
}
