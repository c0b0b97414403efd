package dsl

import (
	"context"

	js "github.com/reoring/yml2vocab/jsonschema"
	"github.com/reoring/yml2vocab/schema"
)

// unionSchema accepts a value matching its branches: at least one for anyOf, exactly
// one for oneOf.
type unionSchema struct {
	branches  []Schema
	types     []string // JSON type of each branch, "" when it has none
	exclusive bool
}

// AnyOf accepts values matching at least one of the branches.
func AnyOf(branches ...Schema) Schema { return newUnion(branches, false) }

// OneOf accepts values matching exactly one of the branches.
func OneOf(branches ...Schema) Schema { return newUnion(branches, true) }

func newUnion(branches []Schema, exclusive bool) *unionSchema {
	u := &unionSchema{branches: branches, types: make([]string, len(branches)), exclusive: exclusive}
	for i, b := range branches {
		if s, err := b.JSONSchema(); err == nil && s != nil {
			u.types[i] = s.Type
		}
	}
	return u
}

// Validate reports, on failure, the issues of the single branch whose type fits the
// value, or union_mismatch when there is no such branch.
func (u *unionSchema) Validate(ctx context.Context, v any) error {
	passing := 0
	var typed []schema.Issues
	for i, b := range u.branches {
		err := b.Validate(ctx, v)
		if err == nil {
			passing++
			continue
		}
		if iss, ok := schema.AsIssues(err); ok && u.types[i] == typeOf(v) {
			typed = append(typed, iss)
		}
	}
	switch {
	case passing == 1, passing > 1 && !u.exclusive:
		return nil
	case passing > 1:
		return schema.Issues{issueAt(ctx, schema.CodeUnionMismatch, v, "", map[string]any{"passingSchemas": passing})}
	case len(typed) == 1:
		return typed[0]
	}
	return schema.Issues{issueAt(ctx, schema.CodeUnionMismatch, v, "", map[string]any{"branches": len(u.branches)})}
}

func (u *unionSchema) JSONSchema() (*js.Schema, error) {
	out := make([]*js.Schema, 0, len(u.branches))
	for _, b := range u.branches {
		s, err := b.JSONSchema()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if u.exclusive {
		return &js.Schema{OneOf: out}, nil
	}
	return &js.Schema{AnyOf: out}, nil
}
