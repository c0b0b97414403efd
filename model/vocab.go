package model

// Status is the lifecycle state of a term.
type Status string

const (
	StatusStable     Status = "stable"
	StatusReserved   Status = "reserved"
	StatusDeprecated Status = "deprecated"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusStable, StatusReserved, StatusDeprecated:
		return true
	}
	return false
}

// Context names with a reserved meaning.
const (
	// ContextVocab stands for "the vocabulary's own context".
	ContextVocab = "vocab"
	// ContextNone marks a term that belongs to no context.
	ContextNone = "none"
)

// Link is a see-also reference.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Example is a JSON example attached to a term.
type Example struct {
	Label string `json:"label,omitempty"`
	JSON  string `json:"json"`
}

// RDFPrefix binds a namespace prefix to its URL.
type RDFPrefix struct {
	Prefix string `json:"prefix"`
	URL    string `json:"url"`
}

// OntologyProperty is a property of the ontology itself, e.g. dc:title.
type OntologyProperty struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	URL      bool   `json:"url"`
}

// Term carries the fields shared by every term category.
type Term struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Comment    string    `json:"comment"`
	Status     Status    `json:"status"`
	Deprecated bool      `json:"deprecated"`
	External   bool      `json:"external"`
	DefinedBy  []string  `json:"defined_by"`
	SeeAlso    []Link    `json:"see_also,omitempty"`
	Example    []Example `json:"example,omitempty"`
	Context    []string  `json:"context"`
}

// RDFClass is a class with the cross references computed from the properties.
type RDFClass struct {
	Term
	Type               []string `json:"type"`
	UserType           []string `json:"user_type"`
	SubClassOf         []string `json:"subClassOf,omitempty"`
	RangeOf            []string `json:"range_of"`
	DomainOf           []string `json:"domain_of"`
	IncludedInDomainOf []string `json:"included_in_domain_of"`
	IncludesRangeOf    []string `json:"includes_range_of"`
}

// RDFProperty is a property with its inferred RDF/OWL typing.
type RDFProperty struct {
	Term
	Type          []string `json:"type"`
	UserType      []string `json:"user_type"`
	SubPropertyOf []string `json:"subPropertyOf,omitempty"`
	Domain        []string `json:"domain,omitempty"`
	Range         []string `json:"range,omitempty"`
	Dataset       bool     `json:"dataset"`
}

// RDFIndividual is a named individual.
type RDFIndividual struct {
	Term
	Type []string `json:"type"`
}

// RDFDatatype is a user defined datatype.
type RDFDatatype struct {
	Term
	Type            []string `json:"type"`
	SubClassOf      []string `json:"subClassOf"`
	RangeOf         []string `json:"range_of"`
	IncludesRangeOf []string `json:"includes_range_of"`
}

// Vocab is the normalized model produced by one run.
type Vocab struct {
	Prefixes           []RDFPrefix        `json:"prefixes"`
	OntologyProperties []OntologyProperty `json:"ontology_properties"`
	Classes            []RDFClass         `json:"classes"`
	Properties         []RDFProperty      `json:"properties"`
	Individuals        []RDFIndividual    `json:"individuals"`
	Datatypes          []RDFDatatype      `json:"datatypes"`
}

// Global is the bookkeeping accumulated while a vocabulary is assembled.
type Global struct {
	VocabPrefix string `json:"vocab_prefix"`
	VocabURL    string `json:"vocab_url"`
	// VocabContext is the first context of the vocab entry; "vocab" when none was declared.
	VocabContext string `json:"vocab_context,omitempty"`
	// StatusCounts tallies classes and properties per status.
	StatusCounts map[Status]int `json:"status_counts"`
	// ContextMentions maps a context identifier to the ids of the terms in it.
	ContextMentions map[string][]string `json:"context_mentions"`
}
