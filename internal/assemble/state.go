package assemble

import (
	"github.com/reoring/yml2vocab/model"
)

// State is the accumulator of one run: the vocabulary's own prefix, URL and context,
// the status tally and the context inverse index. A State must not be shared between
// runs.
type State struct {
	vocabPrefix  string
	vocabURL     string
	vocabContext string // first context of the vocab entry
	statusCounts map[model.Status]int
	mentions     map[string][]string
}

// NewState returns an empty accumulator.
func NewState() *State {
	return &State{
		statusCounts: map[model.Status]int{},
		mentions:     map[string][]string{},
	}
}

// Global returns a copy of the bookkeeping gathered so far.
func (s *State) Global() model.Global {
	return model.Global{
		VocabPrefix:     s.vocabPrefix,
		VocabURL:        s.vocabURL,
		VocabContext:    s.vocabContext,
		StatusCounts:    s.statusCounts,
		ContextMentions: s.mentions,
	}.Clone()
}

func (s *State) countStatus(st model.Status) {
	if st == "" {
		st = model.StatusStable
	}
	s.statusCounts[st]++
}

// setVocab records the identity of the vocabulary. The first context becomes the
// default context of every term and gets an (initially empty) inverse-index entry,
// even when it is the placeholder or the "none" marker.
func (s *State) setVocab(prefix, url string, context []string) {
	s.vocabPrefix = prefix
	s.vocabURL = url
	s.vocabContext = ""
	if len(context) == 0 {
		return
	}
	s.vocabContext = context[0]
	if s.vocabContext != "" {
		s.mentions[s.vocabContext] = []string{}
	}
}
