// Package assemble builds the normalized vocabulary model from the validated raw
// structure: prefixes, ontology properties, properties, classes, individuals and
// datatypes, with the domain/range cross references and the context index.
package assemble

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/reoring/yml2vocab/internal/finalize"
	"github.com/reoring/yml2vocab/model"
)

var (
	// ErrMissingSection reports that vocab or ontology is absent.
	ErrMissingSection = errors.New("missing mandatory section")
	// ErrMissingScalar reports that the vocab entry lacks its prefix or URL.
	ErrMissingScalar = errors.New("missing mandatory value")
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock sets the clock used for the dc:date stamp.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.log = l
		}
	}
}

// Assembler turns a RawVocab into a Vocab. It holds no per-run data and may be reused;
// every run gets its own State.
type Assembler struct {
	now func() time.Time
	log *slog.Logger
}

// New returns an Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		now: time.Now,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// finalized is the raw vocabulary after entry finalization.
type finalized struct {
	vocab, prefix, ontology               []model.Entry
	class, property, individual, datatype []model.Entry
}

// Assemble builds the model and records the bookkeeping in st. The vocab section is
// processed first so that the vocabulary context is known before any term resolves
// its contexts; properties are built before classes and datatypes, whose cross
// references are read off the finished properties.
func (a *Assembler) Assemble(raw model.RawVocab, st *State) (model.Vocab, error) {
	if raw.Vocab == nil {
		return model.Vocab{}, fmt.Errorf("%w: no 'vocab' section in the vocabulary definition", ErrMissingSection)
	}
	if raw.Ontology == nil {
		return model.Vocab{}, fmt.Errorf("%w: no 'ontology' section in the vocabulary definition", ErrMissingSection)
	}
	f := finalized{
		vocab:      finalize.Entries(raw.Vocab),
		prefix:     finalize.Entries(raw.Prefix),
		ontology:   finalize.Entries(raw.Ontology),
		class:      finalize.Entries(raw.Class),
		property:   finalize.Entries(raw.Property),
		individual: finalize.Entries(raw.Individual),
		datatype:   finalize.Entries(raw.Datatype),
	}

	prefixes, err := a.prefixes(f, st)
	if err != nil {
		return model.Vocab{}, err
	}
	v := model.Vocab{
		Prefixes:           prefixes,
		OntologyProperties: a.ontologyProperties(f.ontology),
	}
	v.Properties = a.properties(f.property, st)
	v.Classes = a.classes(f.class, v.Properties, st)
	v.Individuals = a.individuals(f.individual, st)
	v.Datatypes = a.datatypes(f.datatype, v.Properties, st)

	a.log.Debug("vocab.assembled",
		"prefix", st.vocabPrefix,
		"classes", len(v.Classes),
		"properties", len(v.Properties),
		"individuals", len(v.Individuals),
		"datatypes", len(v.Datatypes),
		"contexts", len(st.mentions),
	)
	return v, nil
}

func (a *Assembler) prefixes(f finalized, st *State) ([]model.RDFPrefix, error) {
	out := make([]model.RDFPrefix, 0, len(f.vocab)+len(f.prefix)+8)
	for i, e := range f.vocab {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: vocab entry %d has no prefix (id)", ErrMissingScalar, i)
		}
		if e.Value == "" {
			return nil, fmt.Errorf("%w: vocab entry %d has no identifier (value)", ErrMissingScalar, i)
		}
		st.setVocab(e.ID, e.Value, e.Context)
		out = append(out, model.RDFPrefix{Prefix: e.ID, URL: e.Value})
	}
	for i, e := range f.prefix {
		value := e.Value
		if value == "" {
			a.log.Warn("vocab.prefix.missing_value", "index", i, "prefix", e.ID)
			value = UndefinedPrefixValue
		}
		out = append(out, model.RDFPrefix{Prefix: e.ID, URL: value})
	}
	return append(out, DefaultPrefixes()...), nil
}

func (a *Assembler) ontologyProperties(entries []model.Entry) []model.OntologyProperty {
	out := make([]model.OntologyProperty, 0, len(entries)+1)
	for i, e := range entries {
		op := model.OntologyProperty{Property: e.Property, Value: e.Value}
		if op.Property == "" {
			a.log.Warn("vocab.ontology.missing_property", "index", i)
			op.Property = UndefinedOntologyProperty
		}
		if op.Value == "" {
			a.log.Warn("vocab.ontology.missing_value", "index", i, "property", op.Property)
			op.Value = UndefinedPropertyValue
		} else {
			op.URL = isURL(op.Value)
		}
		out = append(out, op)
	}
	return append(out, model.OntologyProperty{
		Property: DateProperty,
		Value:    a.now().UTC().Format(time.DateOnly),
	})
}

func (a *Assembler) properties(entries []model.Entry, st *State) []model.RDFProperty {
	out := make([]model.RDFProperty, 0, len(entries))
	for _, e := range entries {
		userType := orEmpty(e.Type)
		types := []string{TypeProperty}
		if e.Status == model.StatusDeprecated {
			types = append(types, TypeDeprecatedProperty)
		}
		types = append(types, userType...)
		st.countStatus(e.Status)

		rng := e.Range
		if len(rng) > 0 {
			if len(rng) == 1 && isIRIShorthand(rng[0]) {
				types = append(types, TypeObjectProperty)
				rng = nil
			} else if allDatatypes(rng) {
				types = append(types, TypeDatatypeProperty)
			}
		}
		out = append(out, model.RDFProperty{
			Term:          a.term(e, st),
			Type:          types,
			UserType:      userType,
			SubPropertyOf: e.UpperValue,
			Domain:        e.Domain,
			Range:         rng,
			Dataset:       e.Dataset,
		})
	}
	return out
}

func (a *Assembler) classes(entries []model.Entry, props []model.RDFProperty, st *State) []model.RDFClass {
	out := make([]model.RDFClass, 0, len(entries))
	for _, e := range entries {
		userType := orEmpty(e.Type)
		types := []string{TypeClass}
		if e.Status == model.StatusDeprecated {
			types = append(types, TypeDeprecatedClass)
		}
		types = append(types, userType...)
		st.countStatus(e.Status)

		c := model.RDFClass{
			Type:               types,
			UserType:           userType,
			SubClassOf:         e.UpperValue,
			RangeOf:            []string{},
			DomainOf:           []string{},
			IncludedInDomainOf: []string{},
			IncludesRangeOf:    []string{},
		}
		for _, p := range props {
			crossref(e.ID, p.ID, p.Range, &c.RangeOf, &c.IncludesRangeOf)
			crossref(e.ID, p.ID, p.Domain, &c.DomainOf, &c.IncludedInDomainOf)
		}
		c.Term = a.term(e, st)
		out = append(out, c)
	}
	return out
}

func (a *Assembler) individuals(entries []model.Entry, st *State) []model.RDFIndividual {
	out := make([]model.RDFIndividual, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.RDFIndividual{
			Term: a.term(e, st),
			// upper_value used to carry the type of an individual; both are honoured
			Type: union(e.Type, e.UpperValue),
		})
	}
	return out
}

// datatypes also retypes every property whose range names one of the datatypes as an
// owl:DatatypeProperty, which the prefix-based check in properties cannot see.
func (a *Assembler) datatypes(entries []model.Entry, props []model.RDFProperty, st *State) []model.RDFDatatype {
	out := make([]model.RDFDatatype, 0, len(entries))
	for _, e := range entries {
		d := model.RDFDatatype{
			Type:            union(e.Type, e.UpperValue),
			SubClassOf:      orEmpty(e.UpperValue),
			RangeOf:         []string{},
			IncludesRangeOf: []string{},
		}
		for i := range props {
			if crossref(e.ID, props[i].ID, props[i].Range, &d.RangeOf, &d.IncludesRangeOf) &&
				!slices.Contains(props[i].Type, TypeDatatypeProperty) {
				a.log.Debug("vocab.property.retyped", "property", props[i].ID, "datatype", e.ID)
				props[i].Type = append(props[i].Type, TypeDatatypeProperty)
			}
		}
		d.Term = a.term(e, st)
		out = append(out, d)
	}
	return out
}

// term copies the shared fields and resolves the contexts of e.
func (a *Assembler) term(e model.Entry, st *State) model.Term {
	return model.Term{
		ID:         e.ID,
		Label:      e.Label,
		Comment:    e.Comment,
		Status:     e.Status,
		Deprecated: e.Deprecated,
		External:   e.External,
		DefinedBy:  e.DefinedBy,
		SeeAlso:    e.SeeAlso,
		Example:    e.Example,
		Context:    st.resolveContexts(e.ID, e.Context),
	}
}

func isIRIShorthand(s string) bool {
	u := strings.ToUpper(s)
	return u == "IRI" || u == "URL"
}

func allDatatypes(refs []string) bool {
	for _, r := range refs {
		if _, ok := extraDatatypes[r]; !ok && !strings.HasPrefix(r, "xsd") {
			return false
		}
	}
	return true
}

// isURL reports whether value parses as an absolute URL. Parse failures are a plain
// "no".
func isURL(value string) bool {
	u, err := url.Parse(value)
	return err == nil && u.Scheme != ""
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
