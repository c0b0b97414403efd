package assemble

import (
	"slices"
	"strings"
)

// localName strips the namespace prefix of a CURIE ("xsd:string" -> "string").
func localName(ref string) string {
	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		return ref
	}
	return parts[1]
}

// crossref records propID under single when refs names id as the property's only
// target, or under multi when id is one of several targets. It reports whether id
// was found.
func crossref(id, propID string, refs []string, single, multi *[]string) bool {
	if len(refs) == 0 {
		return false
	}
	found := false
	for _, ref := range refs {
		if localName(ref) == id {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if len(refs) == 1 {
		*single = append(*single, propID)
	} else {
		*multi = append(*multi, propID)
	}
	return true
}

// union concatenates lists, dropping repeated values and keeping first occurrences.
func union(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		for _, v := range l {
			if !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	return out
}
