package dsl

import (
	"context"

	js "github.com/reoring/yml2vocab/jsonschema"
	"github.com/reoring/yml2vocab/schema"
)

type arraySchema struct {
	elem Schema
}

// Array returns a schema for lists whose elements all conform to elem.
func Array(elem Schema) Schema { return arraySchema{elem: elem} }

func (a arraySchema) Validate(ctx context.Context, v any) error {
	arr, ok := v.([]any)
	if !ok {
		return invalidType(ctx, v, "array")
	}
	var iss schema.Issues
	for i, item := range arr {
		if err := a.elem.Validate(ctx, item); err != nil {
			iss = append(iss, childIssues(err, schema.Root().Index(i).Pointer())...)
			if IsFailFast(ctx) {
				break
			}
		}
	}
	return asError(iss)
}

func (a arraySchema) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}
