// Package vocabschema declares the structure of a vocabulary document, checks
// documents against it and decodes them into the raw model.
package vocabschema

import (
	"github.com/reoring/yml2vocab/dsl"
	js "github.com/reoring/yml2vocab/jsonschema"
)

// TermSections are the sections whose items are terms.
var TermSections = []string{"class", "property", "individual", "datatype"}

// oneOrList accepts a bare item or a list of items.
func oneOrList(item dsl.Schema) dsl.Schema {
	return dsl.AnyOf(dsl.Array(item), item)
}

// stringOrList is the shape of most multi-valued term fields.
func stringOrList() dsl.Schema {
	return dsl.OneOf(dsl.String(), dsl.Array(dsl.String()))
}

func term() dsl.Schema {
	link := dsl.Object().
		Field("label", dsl.String()).Required().
		Field("url", dsl.String().Format(dsl.FormatURI)).Required().
		UnknownStrict().
		MustBuild()
	example := dsl.Object().
		Field("label", dsl.String()).
		Field("json", dsl.String()).Required().
		UnknownStrict().
		MustBuild()

	return dsl.Object().
		Field("id", dsl.String()).Required().
		Field("label", dsl.String()).Required().
		Field("comment", dsl.String()).Required().
		Field("upper_value", stringOrList()).
		Field("type", stringOrList()).
		Field("domain", stringOrList()).
		Field("range", stringOrList()).
		Field("defined_by", stringOrList()).
		Field("context", stringOrList()).
		Field("deprecated", dsl.Bool()).
		Field("external", dsl.Bool()).
		Field("dataset", dsl.Bool()).
		Field("status", dsl.Enum("stable", "reserved", "deprecated")).
		Field("see_also", oneOrList(link)).
		Field("example", oneOrList(example)).
		UnknownStrict().
		MustBuild()
}

// Vocabulary returns the schema of a whole vocabulary document.
func Vocabulary() dsl.Schema {
	vocab := dsl.Object().
		Field("id", dsl.String()).Required().
		Field("value", dsl.String().Format(dsl.FormatURI)).Required().
		Field("context", dsl.String()).
		UnknownStrict().
		MustBuild()
	prefix := dsl.Object().
		Field("id", dsl.String()).Required().
		Field("value", dsl.String().Format(dsl.FormatURI)).Required().
		UnknownStrict().
		MustBuild()
	ontology := dsl.Object().
		Field("property", dsl.String()).Required().
		Field("value", dsl.String()).Required().
		UnknownStrict().
		MustBuild()
	t := term()

	return dsl.Object().
		Field("vocab", oneOrList(vocab)).Required().
		Field("prefix", oneOrList(prefix)).
		Field("ontology", dsl.Array(ontology)).Required().
		Field("class", dsl.Array(t)).
		Field("property", dsl.Array(t)).
		Field("individual", dsl.Array(t)).
		Field("datatype", dsl.Array(t)).
		UnknownStrict().
		MustBuild()
}

// JSONSchema exports the document schema.
func JSONSchema() (*js.Schema, error) {
	s, err := Vocabulary().JSONSchema()
	if err != nil {
		return nil, err
	}
	s.ID = "https://github.com/reoring/yml2vocab/schema"
	s.Draft = "https://json-schema.org/draft/2019-09/schema"
	s.Title = "Schema for the vocabulary definition"
	return s, nil
}
