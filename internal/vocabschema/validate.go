package vocabschema

import (
	"context"

	"github.com/reoring/yml2vocab/dsl"
	"github.com/reoring/yml2vocab/i18n"
	"github.com/reoring/yml2vocab/schema"
)

// Option configures a Validator.
type Option func(*Validator)

// WithTranslator sets the Translator used for issue messages. The default is the
// process-wide i18n Translator.
func WithTranslator(tr i18n.Translator) Option {
	return func(v *Validator) {
		if tr != nil {
			v.tr = tr
		}
	}
}

// WithFailFast stops validation at the first issue.
func WithFailFast(enabled bool) Option {
	return func(v *Validator) { v.failFast = enabled }
}

// Validator checks decoded documents against the vocabulary schema.
type Validator struct {
	root     dsl.Schema
	tr       i18n.Translator
	failFast bool
}

// NewValidator returns a Validator for the vocabulary schema.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{root: Vocabulary(), tr: i18n.Current()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks doc against the structural schema and, when that passes, the
// per-section id uniqueness rule. It returns nil when the document conforms.
func (v *Validator) Validate(ctx context.Context, doc any) schema.Issues {
	ctx = dsl.WithTranslator(dsl.WithFailFast(ctx, v.failFast), v.tr)
	if err := v.root.Validate(ctx, doc); err != nil {
		if iss, ok := schema.AsIssues(err); ok {
			return iss
		}
		return schema.Issues{{Path: "/", Code: schema.CodeParseError, Message: err.Error(), Cause: err}}
	}
	var out schema.Issues
	v.checkUnique(doc, &out)
	if len(out) > 0 {
		return out
	}
	return nil
}

// checkUnique reports every repeated id within a term section.
func (v *Validator) checkUnique(doc any, out *schema.Issues) {
	root, ok := doc.(map[string]any)
	if !ok {
		return
	}
	for _, section := range TermSections {
		items, _ := root[section].([]any)
		first := make(map[string]int, len(items))
		for i, it := range items {
			obj, _ := it.(map[string]any)
			id, _ := obj["id"].(string)
			if j, dup := first[id]; dup {
				*out = append(*out, schema.Issue{
					Path:          schema.Root().Field(section).Index(i).Field("id").Pointer(),
					Code:          schema.CodeUniqueness,
					Message:       v.tr.Message(schema.CodeUniqueness, map[string]string{"key": id}),
					Params:        map[string]any{"id": id, "firstIndex": j},
					Data:          id,
					InputFragment: `"` + id + `"`,
				})
				if v.failFast {
					return
				}
				continue
			}
			first[id] = i
		}
	}
}
