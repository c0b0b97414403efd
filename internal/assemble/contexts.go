package assemble

import (
	"github.com/reoring/yml2vocab/model"
)

// resolveContexts maps a term's context names to context identifiers and registers
// the term under each of them. The placeholder becomes the vocabulary's own context
// (or "none" when there is none), "none" entries are dropped and duplicates removed,
// keeping first occurrences.
func (s *State) resolveContexts(id string, names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == model.ContextVocab {
			name = model.ContextNone
			if s.vocabContext != "" {
				name = s.vocabContext
			}
		}
		if name == model.ContextNone {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, ctx := range out {
		s.mentions[ctx] = append(s.mentions[ctx], id)
	}
	return out
}
