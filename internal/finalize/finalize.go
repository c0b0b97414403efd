// Package finalize normalizes authored term entries into the canonical Entry shape.
package finalize

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reoring/yml2vocab/model"
)

// Entry normalizes one authored entry. It is a pure function; finalizing an already
// finalized entry (via Entry.Raw) returns it unchanged.
func Entry(raw model.RawEntry) model.Entry {
	status, deprecated := reconcileStatus(raw)
	external := raw.External != nil && *raw.External
	e := model.Entry{
		ID:         raw.ID,
		Property:   raw.Property,
		Value:      raw.Value,
		Label:      label(raw),
		Comment:    cleanComment(raw.Comment),
		UpperValue: toList(raw.UpperValue, keepAbsent[string]()),
		Type:       toList(raw.Type, keepAbsent[string]()),
		Domain:     toList(raw.Domain, keepAbsent[string]()),
		Range:      toList(raw.Range, keepAbsent[string]()),
		DefinedBy:  toList(raw.DefinedBy, emptyWhenAbsent),
		Context:    toList(raw.Context, vocabContextWhenAbsent),
		Status:     status,
		Deprecated: deprecated,
		External:   external,
		Dataset:    raw.Dataset != nil && *raw.Dataset,
		SeeAlso:    toList(raw.SeeAlso, dropEmpty[model.Link]()),
		Example:    toList(raw.Example, dropEmpty[model.Example]()),
	}
	if external {
		// a foreign term must not get relationships asserted by this vocabulary
		e.Domain, e.Range, e.UpperValue = nil, nil, nil
	}
	return e
}

// Entries finalizes a section; a nil section stays nil.
func Entries(raws []model.RawEntry) []model.Entry {
	if raws == nil {
		return nil
	}
	out := make([]model.Entry, len(raws))
	for i, r := range raws {
		out[i] = Entry(r)
	}
	return out
}

// policy decides what a list field becomes when it is absent from the source.
type policy[T any] struct {
	absent        func() []T // nil keeps the field absent
	emptyIsAbsent bool       // treat an authored empty list as absent
}

func keepAbsent[T any]() policy[T] { return policy[T]{} }

func dropEmpty[T any]() policy[T] { return policy[T]{emptyIsAbsent: true} }

var (
	emptyWhenAbsent = policy[string]{
		absent: func() []string { return []string{} },
	}
	vocabContextWhenAbsent = policy[string]{
		absent:        func() []string { return []string{model.ContextVocab} },
		emptyIsAbsent: true,
	}
)

// toList coerces a single-value-or-list field into a list.
func toList[T any](m model.Multi[T], p policy[T]) []T {
	if !m.Set || (p.emptyIsAbsent && len(m.Items) == 0) {
		if p.absent == nil {
			return nil
		}
		return p.absent()
	}
	if len(m.Items) == 0 {
		return []T{}
	}
	return slices.Clone(m.Items)
}

func reconcileStatus(raw model.RawEntry) (model.Status, bool) {
	switch {
	case raw.Status != "":
		return raw.Status, raw.Status == model.StatusDeprecated
	case raw.Deprecated != nil:
		if *raw.Deprecated {
			return model.StatusDeprecated, true
		}
		return model.StatusReserved, false
	default:
		return model.StatusStable, false
	}
}

func label(raw model.RawEntry) string {
	switch {
	case raw.Label != "":
		return raw.Label
	case raw.ID != "":
		return Uncamel(raw.ID, " ")
	default:
		return ""
	}
}

// Uncamel turns "rangeOfThing" into "Range of thing": sep goes before every rune
// that equals its own upper-case form, which is lower-cased, and the first rune is
// upper-cased.
func Uncamel(s, sep string) string {
	if s == "" {
		return s
	}
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	var b strings.Builder
	for i, r := range s {
		ch := string(r)
		switch {
		case i == 0:
			b.WriteString(upper.String(ch))
		case upper.String(ch) == ch:
			b.WriteString(sep)
			b.WriteString(lower.String(ch))
		default:
			b.WriteString(ch)
		}
	}
	return b.String()
}

// cleanComment drops one trailing newline, then one pair of matching surrounding
// quotes.
func cleanComment(s string) string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return s
	}
	for _, q := range []byte{'"', '\''} {
		if s[0] == q && s[len(s)-1] == q {
			// a lone quote both opens and closes
			return s[1:max(1, len(s)-1)]
		}
	}
	return s
}
