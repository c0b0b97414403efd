package model

// Multi is a field that the author may write either as a bare value or as a list.
type Multi[T any] struct {
	Items  []T
	Single bool // authored as a bare value rather than a list
	Set    bool // the field appeared in the source
}

// One returns a Multi authored as a bare value.
func One[T any](v T) Multi[T] {
	return Multi[T]{Items: []T{v}, Single: true, Set: true}
}

// Many returns a Multi authored as a list. Calling Many with no arguments yields an
// explicitly empty list, which is not the same as an absent field.
func Many[T any](vs ...T) Multi[T] {
	items := make([]T, len(vs))
	copy(items, vs)
	return Multi[T]{Items: items, Set: true}
}

// RawEntry is one authored item of any section. Which fields are meaningful depends on
// the section: vocab and prefix items use ID and Value, ontology items use Property and
// Value, term sections use the rest.
type RawEntry struct {
	ID       string
	Property string
	Value    string
	Label    string
	Comment  string

	UpperValue Multi[string]
	Type       Multi[string]
	Domain     Multi[string]
	Range      Multi[string]
	DefinedBy  Multi[string]
	Context    Multi[string]

	Status     Status // empty when not authored
	Deprecated *bool
	External   *bool
	Dataset    *bool

	SeeAlso Multi[Link]
	Example Multi[Example]
}

// RawVocab is the validated document partitioned by section. A nil section was absent
// from the source; vocab and ontology are mandatory.
type RawVocab struct {
	Vocab      []RawEntry
	Prefix     []RawEntry
	Ontology   []RawEntry
	Class      []RawEntry
	Property   []RawEntry
	Individual []RawEntry
	Datatype   []RawEntry
}

// Entry is a term after finalization.
type Entry struct {
	ID       string
	Property string
	Value    string
	Label    string
	Comment  string

	UpperValue []string
	Type       []string
	Domain     []string
	Range      []string
	DefinedBy  []string
	Context    []string

	Status     Status
	Deprecated bool
	External   bool
	Dataset    bool

	SeeAlso []Link
	Example []Example
}

// Raw turns a finalized entry back into the authored shape, so that it can be fed to
// the finalizer again.
func (e Entry) Raw() RawEntry {
	deprecated, external, dataset := e.Deprecated, e.External, e.Dataset
	return RawEntry{
		ID:         e.ID,
		Property:   e.Property,
		Value:      e.Value,
		Label:      e.Label,
		Comment:    e.Comment,
		UpperValue: listAsMulti(e.UpperValue),
		Type:       listAsMulti(e.Type),
		Domain:     listAsMulti(e.Domain),
		Range:      listAsMulti(e.Range),
		DefinedBy:  listAsMulti(e.DefinedBy),
		Context:    listAsMulti(e.Context),
		Status:     e.Status,
		Deprecated: &deprecated,
		External:   &external,
		Dataset:    &dataset,
		SeeAlso:    listAsMulti(e.SeeAlso),
		Example:    listAsMulti(e.Example),
	}
}

func listAsMulti[T any](vs []T) Multi[T] {
	if vs == nil {
		return Multi[T]{}
	}
	return Many(vs...)
}
