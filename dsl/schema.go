package dsl

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/reoring/yml2vocab/i18n"
	js "github.com/reoring/yml2vocab/jsonschema"
	"github.com/reoring/yml2vocab/schema"
)

// Schema validates a JSON-like value and describes itself as JSON Schema.
type Schema interface {
	// Validate returns nil when v conforms, and schema.Issues otherwise. Issue paths
	// are JSON Pointers relative to v.
	Validate(ctx context.Context, v any) error
	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// ---- context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
	_ctxKeyTranslator
)

// WithFailFast returns a child context that stops validation at the first issue.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether validation should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyFailFast).(bool)
	return b
}

// WithTranslator returns a child context whose issue messages are rendered by tr.
func WithTranslator(ctx context.Context, tr i18n.Translator) context.Context {
	return context.WithValue(ctx, _ctxKeyTranslator, tr)
}

func translator(ctx context.Context) i18n.Translator {
	if tr, ok := ctx.Value(_ctxKeyTranslator).(i18n.Translator); ok && tr != nil {
		return tr
	}
	return i18n.Current()
}

// ---- issue helpers ----

// issueAt builds an issue for the value under validation. key is embedded in the
// message when not empty.
func issueAt(ctx context.Context, code string, data any, key string, params map[string]any) schema.Issue {
	var msgData map[string]string
	if key != "" {
		msgData = map[string]string{"key": key}
	}
	return schema.Issue{
		Path:          "/",
		Code:          code,
		Message:       translator(ctx).Message(code, msgData),
		Params:        params,
		Data:          data,
		InputFragment: fragment(data),
	}
}

func invalidType(ctx context.Context, data any, want string) error {
	return schema.Issues{issueAt(ctx, schema.CodeInvalidType, data, want, map[string]any{"type": want})}
}

// childIssues rebases the issues of a child value under seg, a JSON Pointer such as
// "/class" or "/3". Errors that are not Issues become a parse_error at seg.
func childIssues(err error, seg string) schema.Issues {
	iss, ok := schema.AsIssues(err)
	if !ok {
		return schema.Issues{{Path: seg, Code: schema.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(schema.Issues, 0, len(iss))
	for _, it := range iss {
		if it.Path == "" || it.Path == "/" {
			it.Path = seg
		} else {
			it.Path = seg + it.Path
		}
		out = append(out, it)
	}
	return out
}

func asError(iss schema.Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}

// typeOf names the JSON type of a decoded value.
func typeOf(data any) string {
	switch data.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case int, int64, float64, json.Number:
		return "number"
	}
	return "unknown"
}

// fragment renders data as compact JSON for error reports, truncated.
func fragment(data any) string {
	if data == nil {
		return ""
	}
	const maxLen = 120
	b, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	if len(b) > maxLen {
		return string(b[:maxLen]) + "..."
	}
	return string(b)
}
