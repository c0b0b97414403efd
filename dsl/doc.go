// Package dsl declares schemas for JSON-like documents (map[string]any, []any and
// scalars) with a small builder API, validates documents against them and exports
// them as JSON Schema.
//
//	item := dsl.Object().
//		Field("id", dsl.String()).Required().
//		Field("tags", dsl.Array(dsl.String())).
//		UnknownStrict().
//		MustBuild()
//
//	if err := item.Validate(ctx, doc); err != nil {
//		iss, _ := schema.AsIssues(err)
//		// iss carries JSON Pointer paths relative to doc
//	}
//
// Objects reject unknown keys by default. Fail-fast mode and the message translator
// travel in the context (WithFailFast, WithTranslator).
package dsl
