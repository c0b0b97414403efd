package dsl

import (
	"context"
	"sort"

	js "github.com/reoring/yml2vocab/jsonschema"
	"github.com/reoring/yml2vocab/schema"
)

type objectSchema struct {
	fields     map[string]Schema
	required   []string
	strict     bool
	sortedKeys []string
}

var _ Schema = (*objectSchema)(nil)

// Validate reports missing required fields at the object itself, then checks the
// present keys in sorted order so that the issue order is deterministic.
func (o *objectSchema) Validate(ctx context.Context, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return invalidType(ctx, v, "object")
	}
	var iss schema.Issues
	for _, k := range o.required {
		if _, ok := m[k]; ok {
			continue
		}
		iss = append(iss, issueAt(ctx, schema.CodeRequired, nil, k, map[string]any{"missingProperty": k}))
		if IsFailFast(ctx) {
			return iss
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		seg := schema.Root().Field(k).Pointer()
		if fs, known := o.fields[k]; known {
			if err := fs.Validate(ctx, m[k]); err != nil {
				iss = append(iss, childIssues(err, seg)...)
			}
		} else if o.strict {
			it := issueAt(ctx, schema.CodeUnknownKey, m[k], k, map[string]any{"additionalProperty": k})
			it.Path = seg
			iss = append(iss, it)
		}
		if IsFailFast(ctx) && len(iss) > 0 {
			return iss
		}
	}
	return asError(iss)
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	for _, k := range o.sortedKeys {
		ps, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, err
		}
		props[k] = ps
	}
	s := &js.Schema{Type: "object", Properties: props}
	if len(o.required) > 0 {
		s.Required = append([]string(nil), o.required...)
	}
	if o.strict {
		s.AdditionalProperties = false
	}
	return s, nil
}
