package dsl

import (
	"context"
	"net/url"
	"slices"

	js "github.com/reoring/yml2vocab/jsonschema"
	"github.com/reoring/yml2vocab/schema"
)

// FormatURI is the format of absolute URIs.
const FormatURI = "uri"

// StringSchema accepts strings, optionally of a given format.
type StringSchema struct {
	format string
}

// String returns a string schema.
func String() *StringSchema { return &StringSchema{} }

// Format restricts the string to a format. Only FormatURI is checked; other names are
// exported but not enforced.
func (s *StringSchema) Format(name string) *StringSchema {
	s.format = name
	return s
}

func (s *StringSchema) Validate(ctx context.Context, v any) error {
	str, ok := v.(string)
	if !ok {
		return invalidType(ctx, v, "string")
	}
	if s.format == FormatURI && !isAbsoluteURI(str) {
		return schema.Issues{issueAt(ctx, schema.CodeInvalidFormat, v, "", map[string]any{"format": s.format})}
	}
	return nil
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: s.format}, nil
}

func isAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

type boolSchema struct{}

// Bool returns a boolean schema.
func Bool() Schema { return boolSchema{} }

func (boolSchema) Validate(ctx context.Context, v any) error {
	if _, ok := v.(bool); !ok {
		return invalidType(ctx, v, "boolean")
	}
	return nil
}

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type enumSchema struct {
	values []string
}

// Enum returns a schema accepting exactly one of the given strings.
func Enum(values ...string) Schema { return enumSchema{values: slices.Clone(values)} }

func (e enumSchema) Validate(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok {
		return invalidType(ctx, v, "string")
	}
	if !slices.Contains(e.values, s) {
		return schema.Issues{issueAt(ctx, schema.CodeInvalidEnum, v, "", map[string]any{"allowedValues": slices.Clone(e.values)})}
	}
	return nil
}

func (e enumSchema) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.values))
	for i, v := range e.values {
		vals[i] = v
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}
