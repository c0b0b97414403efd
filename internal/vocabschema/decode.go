package vocabschema

import (
	"github.com/reoring/yml2vocab/model"
)

// Decode converts a document into the typed raw structure. The document should have
// passed Validate; values of an unexpected type are skipped rather than reported.
// Sections missing from the document stay nil in the result.
func Decode(doc any) model.RawVocab {
	root, _ := doc.(map[string]any)
	return model.RawVocab{
		Vocab:      decodeSection(root, "vocab"),
		Prefix:     decodeSection(root, "prefix"),
		Ontology:   decodeSection(root, "ontology"),
		Class:      decodeSection(root, "class"),
		Property:   decodeSection(root, "property"),
		Individual: decodeSection(root, "individual"),
		Datatype:   decodeSection(root, "datatype"),
	}
}

// decodeSection accepts either a list of items or a bare item, which vocab and
// prefix allow.
func decodeSection(root map[string]any, name string) []model.RawEntry {
	v, ok := root[name]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []any:
		out := make([]model.RawEntry, 0, len(t))
		for _, it := range t {
			if obj, ok := it.(map[string]any); ok {
				out = append(out, decodeEntry(obj))
			}
		}
		return out
	case map[string]any:
		return []model.RawEntry{decodeEntry(t)}
	}
	return []model.RawEntry{}
}

func decodeEntry(obj map[string]any) model.RawEntry {
	return model.RawEntry{
		ID:         stringField(obj, "id"),
		Property:   stringField(obj, "property"),
		Value:      stringField(obj, "value"),
		Label:      stringField(obj, "label"),
		Comment:    stringField(obj, "comment"),
		UpperValue: stringsField(obj, "upper_value"),
		Type:       stringsField(obj, "type"),
		Domain:     stringsField(obj, "domain"),
		Range:      stringsField(obj, "range"),
		DefinedBy:  stringsField(obj, "defined_by"),
		Context:    stringsField(obj, "context"),
		Status:     model.Status(stringField(obj, "status")),
		Deprecated: boolField(obj, "deprecated"),
		External:   boolField(obj, "external"),
		Dataset:    boolField(obj, "dataset"),
		SeeAlso:    objectsField(obj, "see_also", decodeLink),
		Example:    objectsField(obj, "example", decodeExample),
	}
}

func decodeLink(obj map[string]any) model.Link {
	return model.Link{Label: stringField(obj, "label"), URL: stringField(obj, "url")}
}

func decodeExample(obj map[string]any) model.Example {
	return model.Example{Label: stringField(obj, "label"), JSON: stringField(obj, "json")}
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func boolField(obj map[string]any, key string) *bool {
	b, ok := obj[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

func stringsField(obj map[string]any, key string) model.Multi[string] {
	switch t := obj[key].(type) {
	case string:
		return model.One(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return model.Many(out...)
	}
	return model.Multi[string]{}
}

func objectsField[T any](obj map[string]any, key string, conv func(map[string]any) T) model.Multi[T] {
	switch t := obj[key].(type) {
	case map[string]any:
		return model.One(conv(t))
	case []any:
		out := make([]T, 0, len(t))
		for _, it := range t {
			if o, ok := it.(map[string]any); ok {
				out = append(out, conv(o))
			}
		}
		return model.Many(out...)
	}
	return model.Multi[T]{}
}
