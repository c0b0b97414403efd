package yml2vocab_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yml2vocab "github.com/reoring/yml2vocab"
	"github.com/reoring/yml2vocab/model"
)

var fixedNow = func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.FixedZone("JST", 9*3600)) }

const petsYAML = `
vocab:
  id: pets
  value: https://example.org/pets#
  context: https://example.org/pets/v1
prefix:
  - id: foaf
    value: http://xmlns.com/foaf/0.1/
ontology:
  - property: dc:title
    value: Pets vocabulary
  - property: rdfs:seeAlso
    value: https://example.org/pets/doc
class:
  - id: Animal
    label: Animal
    comment: "\"Any animal.\"\n"
  - id: Dog
    label: Dog
    comment: A dog.
    upper_value: Animal
  - id: Person
    label: Person
    comment: A person.
    upper_value: foaf:Person
    see_also:
      label: FOAF
      url: http://xmlns.com/foaf/spec/
property:
  - id: homePage
    label: ""
    comment: The home page.
    domain: Person
    range: IRI
  - id: owner
    label: Owner
    comment: Who owns the pet.
    domain: [Dog, pets:Animal]
    range: Person
    context: [vocab, https://example.org/other]
  - id: weight
    label: Weight
    comment: Weight in kilograms.
    range: Kilograms
    status: reserved
  - id: colour
    label: Colour
    comment: Old name.
    deprecated: true
individual:
  - id: rex
    label: Rex
    comment: A good dog.
    type: Dog
datatype:
  - id: Kilograms
    label: Kilograms
    comment: A mass.
    upper_value: xsd:decimal
`

const petsJSON = `{
  "vocab": {"id": "pets", "value": "https://example.org/pets#", "context": "https://example.org/pets/v1"},
  "prefix": [{"id": "foaf", "value": "http://xmlns.com/foaf/0.1/"}],
  "ontology": [
    {"property": "dc:title", "value": "Pets vocabulary"},
    {"property": "rdfs:seeAlso", "value": "https://example.org/pets/doc"}
  ],
  "class": [
    {"id": "Animal", "label": "Animal", "comment": "\"Any animal.\"\n"},
    {"id": "Dog", "label": "Dog", "comment": "A dog.", "upper_value": "Animal"},
    {"id": "Person", "label": "Person", "comment": "A person.", "upper_value": "foaf:Person",
     "see_also": {"label": "FOAF", "url": "http://xmlns.com/foaf/spec/"}}
  ],
  "property": [
    {"id": "homePage", "label": "", "comment": "The home page.", "domain": "Person", "range": "IRI"},
    {"id": "owner", "label": "Owner", "comment": "Who owns the pet.", "domain": ["Dog", "pets:Animal"],
     "range": "Person", "context": ["vocab", "https://example.org/other"]},
    {"id": "weight", "label": "Weight", "comment": "Weight in kilograms.", "range": "Kilograms", "status": "reserved"},
    {"id": "colour", "label": "Colour", "comment": "Old name.", "deprecated": true}
  ],
  "individual": [{"id": "rex", "label": "Rex", "comment": "A good dog.", "type": "Dog"}],
  "datatype": [{"id": "Kilograms", "label": "Kilograms", "comment": "A mass.", "upper_value": "xsd:decimal"}]
}`

func load(t *testing.T, src yml2vocab.Source, opts ...yml2vocab.Option) yml2vocab.Snapshot {
	t.Helper()
	opts = append([]yml2vocab.Option{yml2vocab.WithNow(fixedNow)}, opts...)
	gen, err := yml2vocab.Load(context.Background(), src, opts...)
	require.NoError(t, err)
	return gen.Snapshot()
}

func class(t *testing.T, v model.Vocab, id string) model.RDFClass {
	t.Helper()
	for _, c := range v.Classes {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("class %q not found", id)
	return model.RDFClass{}
}

func property(t *testing.T, v model.Vocab, id string) model.RDFProperty {
	t.Helper()
	for _, p := range v.Properties {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("property %q not found", id)
	return model.RDFProperty{}
}

func TestLoad_YAML(t *testing.T) {
	snap := load(t, yml2vocab.YAMLBytes([]byte(petsYAML)))
	v, g := snap.Vocab, snap.Global

	require.NotEmpty(t, v.Prefixes)
	assert.Equal(t, model.RDFPrefix{Prefix: "pets", URL: "https://example.org/pets#"}, v.Prefixes[0])
	assert.Equal(t, model.RDFPrefix{Prefix: "foaf", URL: "http://xmlns.com/foaf/0.1/"}, v.Prefixes[1])

	assert.Equal(t, []model.OntologyProperty{
		{Property: "dc:title", Value: "Pets vocabulary"},
		{Property: "rdfs:seeAlso", Value: "https://example.org/pets/doc", URL: true},
		{Property: "dc:date", Value: "2026-10-18"},
	}, v.OntologyProperties)

	animal := class(t, v, "Animal")
	assert.Equal(t, "Any animal.", animal.Comment)
	assert.Equal(t, []string{"owner"}, animal.IncludedInDomainOf)

	dog := class(t, v, "Dog")
	assert.Equal(t, []string{"Animal"}, dog.SubClassOf)
	assert.Equal(t, []string{"owner"}, dog.IncludedInDomainOf)
	assert.Equal(t, []string{"https://example.org/pets/v1"}, dog.Context)

	person := class(t, v, "Person")
	assert.Equal(t, []string{"homePage"}, person.DomainOf)
	assert.Equal(t, []string{"owner"}, person.RangeOf)
	assert.Equal(t, []model.Link{{Label: "FOAF", URL: "http://xmlns.com/foaf/spec/"}}, person.SeeAlso)

	home := property(t, v, "homePage")
	assert.Equal(t, "Home page", home.Label)
	assert.Equal(t, []string{"rdf:Property", "owl:ObjectProperty"}, home.Type)

	owner := property(t, v, "owner")
	assert.Equal(t, []string{"https://example.org/pets/v1", "https://example.org/other"}, owner.Context)

	weight := property(t, v, "weight")
	assert.Equal(t, []string{"rdf:Property", "owl:DatatypeProperty"}, weight.Type)
	assert.Equal(t, model.StatusReserved, weight.Status)

	colour := property(t, v, "colour")
	assert.True(t, colour.Deprecated)
	assert.Equal(t, model.StatusDeprecated, colour.Status)

	require.Len(t, v.Individuals, 1)
	assert.Equal(t, []string{"Dog"}, v.Individuals[0].Type)

	require.Len(t, v.Datatypes, 1)
	assert.Equal(t, []string{"xsd:decimal"}, v.Datatypes[0].SubClassOf)
	assert.Equal(t, []string{"weight"}, v.Datatypes[0].RangeOf)

	assert.Equal(t, "pets", g.VocabPrefix)
	assert.Equal(t, "https://example.org/pets#", g.VocabURL)
	assert.Equal(t, "https://example.org/pets/v1", g.VocabContext)
	assert.Equal(t, map[model.Status]int{
		model.StatusStable:     5,
		model.StatusReserved:   1,
		model.StatusDeprecated: 1,
	}, g.StatusCounts)
	assert.ElementsMatch(t, []string{"Animal", "Dog", "Person", "homePage", "owner", "weight", "colour", "rex", "Kilograms"},
		g.ContextMentions["https://example.org/pets/v1"])
	assert.Equal(t, []string{"owner"}, g.ContextMentions["https://example.org/other"])
}

func TestLoad_JSONMatchesYAML(t *testing.T) {
	fromYAML := load(t, yml2vocab.YAMLBytes([]byte(petsYAML)))
	fromJSON := load(t, yml2vocab.JSONReader(strings.NewReader(petsJSON)))
	assert.Equal(t, fromYAML, fromJSON)
}

func TestLoad_ValidationError(t *testing.T) {
	src := `
vocab:
  id: ex
  value: https://example.org/ns#
class:
  - id: Dog
    label: Dog
    comment: 1
    colour: brown
`
	_, err := yml2vocab.Load(context.Background(), yml2vocab.YAMLBytes([]byte(src)))
	require.Error(t, err)
	assert.True(t, yml2vocab.IsKind(err, yml2vocab.KindValidation))
	assert.ErrorIs(t, err, yml2vocab.ErrValidation)

	iss, ok := yml2vocab.AsIssues(err)
	require.True(t, ok)
	var got []string
	for _, it := range iss {
		got = append(got, it.Code+" "+it.Path)
	}
	assert.ElementsMatch(t, []string{
		"required /",
		"invalid_type /class/0/comment",
		"unknown_key /class/0/colour",
	}, got)

	var oe *yml2vocab.OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "yml2vocab.Validate", oe.Op)
}

func TestLoad_FailFastAndLanguage(t *testing.T) {
	_, err := yml2vocab.Load(context.Background(), yml2vocab.YAMLBytes([]byte("{}")),
		yml2vocab.WithFailFast(true), yml2vocab.WithLanguage("ja"))
	iss, ok := yml2vocab.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, yml2vocab.CodeRequired, iss[0].Code)
	assert.NotContains(t, iss[0].Message, "required")
}

func TestLoad_DuplicateIDs(t *testing.T) {
	src := `
vocab: {id: ex, value: "https://example.org/ns#"}
ontology: []
property:
  - {id: name, label: Name, comment: c}
  - {id: name, label: Name, comment: c}
`
	_, err := yml2vocab.Load(context.Background(), yml2vocab.YAMLBytes([]byte(src)))
	iss, ok := yml2vocab.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, yml2vocab.CodeUniqueness, iss[0].Code)
	assert.Equal(t, "/property/1/id", iss[0].Path)
}

func TestLoad_InvalidSource(t *testing.T) {
	tests := []struct {
		name string
		src  yml2vocab.Source
	}{
		{"yaml", yml2vocab.YAMLBytes([]byte("vocab: [unclosed"))},
		{"json", yml2vocab.JSONBytes([]byte(`{"vocab": `))},
		{"json trailing data", yml2vocab.JSONBytes([]byte(`{} {}`))},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yml2vocab.Load(context.Background(), tt.src)
			require.Error(t, err)
			assert.True(t, yml2vocab.IsKind(err, yml2vocab.KindInvalidSource))
			assert.ErrorIs(t, err, yml2vocab.ErrInvalidSource)
			iss, ok := yml2vocab.AsIssues(err)
			require.True(t, ok)
			assert.Equal(t, yml2vocab.CodeParseError, iss[0].Code)
		})
	}
}

func TestLoad_DuplicateKeys(t *testing.T) {
	src := `
vocab:
  id: ex
  value: https://example.org/ns#
ontology:
  - property: dc:title
    value: First
    value: Second
`
	ctx := context.Background()

	_, err := yml2vocab.Load(ctx, yml2vocab.YAMLBytes([]byte(src)))
	assert.True(t, yml2vocab.IsKind(err, yml2vocab.KindValidation))
	iss, ok := yml2vocab.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, yml2vocab.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/ontology/0", iss[0].Path)
	assert.Equal(t, "value", iss[0].Params["key"])

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	snap := load(t, yml2vocab.YAMLBytes([]byte(src)), yml2vocab.WithDuplicateKeys(yml2vocab.Warn), yml2vocab.WithLogger(logger))
	assert.Equal(t, "Second", snap.Vocab.OntologyProperties[0].Value)
	assert.Contains(t, logs.String(), "vocab.source.duplicate_key")

	logs.Reset()
	load(t, yml2vocab.YAMLBytes([]byte(src)), yml2vocab.WithDuplicateKeys(yml2vocab.Ignore), yml2vocab.WithLogger(logger))
	assert.NotContains(t, logs.String(), "duplicate_key")

	doc := `{"vocab":{"id":"ex","id":"ex","value":"https://example.org/ns#"},"ontology":[]}`
	_, err = yml2vocab.Load(ctx, yml2vocab.JSONBytes([]byte(doc)))
	iss, ok = yml2vocab.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/vocab", iss[0].Path)
}

func TestLoad_MaxBytes(t *testing.T) {
	_, err := yml2vocab.Load(context.Background(), yml2vocab.YAMLBytes([]byte(petsYAML)), yml2vocab.WithMaxBytes(64))
	assert.True(t, yml2vocab.IsKind(err, yml2vocab.KindInvalidSource))
	iss, ok := yml2vocab.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, yml2vocab.CodeTooBig, iss[0].Code)

	load(t, yml2vocab.YAMLBytes([]byte(petsYAML)), yml2vocab.WithMaxBytes(int64(len(petsYAML))))
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := yml2vocab.Load(ctx, yml2vocab.YAMLBytes([]byte(petsYAML)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	load(t, yml2vocab.YAMLBytes([]byte(petsYAML)), yml2vocab.WithLogger(logger))
	out := logs.String()
	assert.Contains(t, out, "vocab.validated")
	assert.Contains(t, out, "vocab.assembled")
	assert.Contains(t, out, "vocab.property.retyped")
}

func TestAssemble_StructuralErrors(t *testing.T) {
	ctx := context.Background()

	_, err := yml2vocab.Assemble(ctx, yml2vocab.RawVocab{})
	assert.True(t, yml2vocab.IsKind(err, yml2vocab.KindMissingSection))
	assert.ErrorIs(t, err, yml2vocab.ErrMissingSection)

	raw := yml2vocab.RawVocab{
		Vocab:    []model.RawEntry{{ID: "ex"}},
		Ontology: []model.RawEntry{},
	}
	_, err = yml2vocab.Assemble(ctx, raw)
	assert.True(t, yml2vocab.IsKind(err, yml2vocab.KindMissingScalar))
	assert.ErrorIs(t, err, yml2vocab.ErrMissingScalar)
	assert.False(t, errors.Is(err, yml2vocab.ErrMissingSection))
}

func TestValidateThenAssemble(t *testing.T) {
	ctx := context.Background()
	raw, err := yml2vocab.Validate(ctx, yml2vocab.YAMLBytes([]byte(petsYAML)))
	require.NoError(t, err)
	assert.Len(t, raw.Class, 3)
	assert.Equal(t, "homePage", raw.Property[0].ID)

	gen, err := yml2vocab.Assemble(ctx, raw, yml2vocab.WithNow(fixedNow))
	require.NoError(t, err)
	assert.Equal(t, load(t, yml2vocab.YAMLBytes([]byte(petsYAML))), gen.Snapshot())
}

// Runs are independent: nothing from one vocabulary leaks into the next.
func TestLoad_IndependentRuns(t *testing.T) {
	first := load(t, yml2vocab.YAMLBytes([]byte(petsYAML)))
	second := load(t, yml2vocab.YAMLBytes([]byte(`
vocab: {id: ex, value: "https://example.org/ns#"}
ontology: []
`)))
	assert.NotEmpty(t, first.Global.ContextMentions)
	assert.Equal(t, map[string][]string{"vocab": {}}, second.Global.ContextMentions)
	assert.Equal(t, "vocab", second.Global.VocabContext)
	assert.Empty(t, second.Global.StatusCounts)
}

func TestGeneration_SnapshotIsCopy(t *testing.T) {
	gen, err := yml2vocab.Load(context.Background(), yml2vocab.YAMLBytes([]byte(petsYAML)), yml2vocab.WithNow(fixedNow))
	require.NoError(t, err)

	snap := gen.Snapshot()
	snap.Vocab.Classes[0].RangeOf = append(snap.Vocab.Classes[0].RangeOf, "mutated")
	snap.Vocab.Properties[0].Type[0] = "mutated"
	snap.Global.ContextMentions["https://example.org/pets/v1"][0] = "mutated"
	snap.Global.StatusCounts[model.StatusStable] = 99

	fresh := gen.Snapshot()
	assert.NotContains(t, fresh.Vocab.Classes[0].RangeOf, "mutated")
	assert.Equal(t, "rdf:Property", fresh.Vocab.Properties[0].Type[0])
	assert.NotContains(t, fresh.Global.ContextMentions["https://example.org/pets/v1"], "mutated")
	assert.Equal(t, 5, fresh.Global.StatusCounts[model.StatusStable])
}

func TestGeneration_Render(t *testing.T) {
	ctx := context.Background()
	gen, err := yml2vocab.Load(ctx, yml2vocab.YAMLBytes([]byte(petsYAML)), yml2vocab.WithNow(fixedNow))
	require.NoError(t, err)

	vandal := yml2vocab.SerializerFunc(func(_ context.Context, snap yml2vocab.Snapshot) ([]byte, error) {
		snap.Vocab.Prefixes[0].Prefix = "mutated"
		return []byte(snap.Vocab.Prefixes[0].Prefix), nil
	})
	out, err := gen.Render(ctx, vandal)
	require.NoError(t, err)
	assert.Equal(t, "mutated", string(out))
	assert.Equal(t, "pets", gen.Snapshot().Vocab.Prefixes[0].Prefix)

	_, err = gen.Render(ctx, nil)
	assert.Error(t, err)

	first, err := gen.Render(ctx, yml2vocab.JSONSnapshot)
	require.NoError(t, err)
	second, err := gen.Render(ctx, yml2vocab.JSONSnapshot)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var decoded yml2vocab.Snapshot
	require.NoError(t, json.Unmarshal(first, &decoded))
	assert.Equal(t, gen.Snapshot().Global, decoded.Global)
	assert.Equal(t, gen.Snapshot().Vocab.Prefixes, decoded.Vocab.Prefixes)
	assert.Contains(t, string(first), `"vocab_prefix": "pets"`)
}

func TestSchemaJSON(t *testing.T) {
	b, err := yml2vocab.SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, []any{"vocab", "ontology"}, doc["required"])
	assert.Equal(t, false, doc["additionalProperties"])
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	class, ok := props["class"].(map[string]any)
	require.True(t, ok)
	item, ok := class["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"id", "label", "comment"}, item["required"])
}
