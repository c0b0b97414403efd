// Package yml2vocab turns a human-authored vocabulary description (YAML or JSON) into
// a normalized, cross-referenced model from which Turtle, JSON-LD and HTML/RDFa
// renderings can be derived.
//
// A run has three steps:
//
//   - Validate: the document is read strictly (duplicate keys are rejected) and checked
//     against the structural schema. Failures are reported as Issues (JSON Pointer,
//     code, message, failing schema parameter, offending data).
//   - Finalize: every entry is normalized (single values become lists, the legacy
//     deprecated flag is reconciled with status, labels are derived from ids, external
//     terms lose their domain/range/superclass).
//   - Assemble: prefixes, ontology properties, properties, classes, individuals and
//     datatypes are built; classes and datatypes learn which properties reference them,
//     and the context index is filled.
//
// Design policy:
//   - Keep only public APIs in the root package; put the engine under internal/.
//   - Each run owns its accumulator; nothing is shared between runs.
//   - Serializers receive a deep copy of the model and cannot change it.
//
// Typical usage:
//
//	gen, err := yml2vocab.Load(ctx, yml2vocab.YAMLBytes(data))
//	if iss, ok := yml2vocab.AsIssues(err); ok {
//		// report iss
//	}
//	out, err := gen.Render(ctx, turtleWriter)
package yml2vocab
