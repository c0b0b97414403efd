package dsl

import (
	"errors"
	"slices"
	"sort"
)

type objectBuilder struct {
	fields   map[string]Schema
	required []string
	strict   bool
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		fields: map[string]Schema{},
		strict: true,
	}
}

// Field registers a field with its schema.
func (b *objectBuilder) Field(name string, s Schema) *fieldStep {
	b.fields[name] = s
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder { return f.b.Require(f.name) }

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	f.b.required = slices.DeleteFunc(f.b.required, func(n string) bool { return n == f.name })
	return f.b
}

func (f *fieldStep) Field(name string, s Schema) *fieldStep { return f.b.Field(name, s) }
func (f *fieldStep) UnknownStrict() *objectBuilder          { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownAllow() *objectBuilder           { return f.b.UnknownAllow() }
func (f *fieldStep) Build() (Schema, error)                 { return f.b.Build() }
func (f *fieldStep) MustBuild() Schema                      { return f.b.MustBuild() }

// Require marks one or more fields as required. Missing fields are reported in the
// order they were first required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		if !slices.Contains(b.required, n) {
			b.required = append(b.required, n)
		}
	}
	return b
}

// UnknownStrict rejects keys that are not declared fields.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.strict = true
	return b
}

// UnknownAllow accepts undeclared keys without checking them.
func (b *objectBuilder) UnknownAllow() *objectBuilder {
	b.strict = false
	return b
}

// Build validates the builder and returns a Schema.
func (b *objectBuilder) Build() (Schema, error) {
	for _, n := range b.required {
		if _, ok := b.fields[n]; !ok {
			return nil, errors.New("dsl: required field " + n + " is not declared")
		}
	}
	fields := make(map[string]Schema, len(b.fields))
	for k, s := range b.fields {
		if s == nil {
			return nil, errors.New("dsl: field " + k + " has no schema")
		}
		fields[k] = s
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &objectSchema{
		fields:     fields,
		required:   slices.Clone(b.required),
		strict:     b.strict,
		sortedKeys: keys,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
