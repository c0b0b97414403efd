package yml2vocab

import (
	"context"
	"errors"

	json "github.com/goccy/go-json"

	"github.com/reoring/yml2vocab/internal/vocabschema"
	"github.com/reoring/yml2vocab/model"
)

// Snapshot is the result of one run: the normalized model and the bookkeeping
// gathered while building it.
type Snapshot struct {
	Vocab  model.Vocab  `json:"vocab"`
	Global model.Global `json:"global"`
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{Vocab: s.Vocab.Clone(), Global: s.Global.Clone()}
}

// Serializer renders a Snapshot into some output format.
type Serializer interface {
	Serialize(ctx context.Context, snap Snapshot) ([]byte, error)
}

// SerializerFunc adapts a function to Serializer.
type SerializerFunc func(ctx context.Context, snap Snapshot) ([]byte, error)

func (f SerializerFunc) Serialize(ctx context.Context, snap Snapshot) ([]byte, error) {
	return f(ctx, snap)
}

// Generation holds an assembled vocabulary. It is immutable and safe for
// concurrent use.
type Generation struct {
	snap Snapshot
}

// Snapshot returns a deep copy of the model.
func (g *Generation) Snapshot() Snapshot { return g.snap.clone() }

// Render hands a private copy of the model to s.
func (g *Generation) Render(ctx context.Context, s Serializer) ([]byte, error) {
	if s == nil {
		return nil, errors.New("yml2vocab: nil serializer")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Serialize(ctx, g.snap.clone())
}

// JSONSnapshot dumps the snapshot as indented JSON. Map keys are sorted, so the
// output is stable across runs with the same clock.
var JSONSnapshot Serializer = SerializerFunc(func(_ context.Context, snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
})

// SchemaJSON returns the structural schema of the vocabulary document.
func SchemaJSON() ([]byte, error) {
	s, err := vocabschema.JSONSchema()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}
