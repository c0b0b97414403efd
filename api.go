package yml2vocab

import (
	"context"

	"github.com/reoring/yml2vocab/internal/assemble"
	"github.com/reoring/yml2vocab/internal/vocabschema"
	"github.com/reoring/yml2vocab/model"
)

// Validate reads src, checks it against the vocabulary schema and returns the
// typed raw structure. Schema violations are reported as an *OpError of
// KindValidation wrapping Issues.
func Validate(ctx context.Context, src Source, opts ...Option) (model.RawVocab, error) {
	return validate(ctx, src, newOptions(opts))
}

func validate(ctx context.Context, src Source, o Options) (model.RawVocab, error) {
	const op = "yml2vocab.Validate"
	if err := ctx.Err(); err != nil {
		return model.RawVocab{}, err
	}
	doc, err := read(src, o)
	if err != nil {
		return model.RawVocab{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.RawVocab{}, err
	}
	v := vocabschema.NewValidator(vocabschema.WithTranslator(o.Translator), vocabschema.WithFailFast(o.FailFast))
	if iss := v.Validate(ctx, doc); len(iss) > 0 {
		return model.RawVocab{}, &OpError{Op: op, Kind: KindValidation, Err: iss}
	}
	raw := vocabschema.Decode(doc)
	o.Logger.Debug("vocab.validated",
		"format", src.Format().String(),
		"prefix", len(raw.Prefix),
		"ontology", len(raw.Ontology),
		"class", len(raw.Class),
		"property", len(raw.Property),
		"individual", len(raw.Individual),
		"datatype", len(raw.Datatype),
	)
	return raw, nil
}

// Assemble builds the normalized model from a raw structure, as returned by
// Validate or constructed directly. A missing vocab or ontology section or a vocab
// entry without id or value is an *OpError of KindMissingSection or KindMissingScalar.
func Assemble(ctx context.Context, raw model.RawVocab, opts ...Option) (*Generation, error) {
	return assembleRaw(ctx, raw, newOptions(opts))
}

func assembleRaw(ctx context.Context, raw model.RawVocab, o Options) (*Generation, error) {
	const op = "yml2vocab.Assemble"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a := assemble.New(assemble.WithClock(o.Now), assemble.WithLogger(o.Logger))
	st := assemble.NewState()
	vocab, err := a.Assemble(raw, st)
	if err != nil {
		return nil, &OpError{Op: op, Kind: kindOf(err), Err: err}
	}
	return &Generation{snap: Snapshot{Vocab: vocab, Global: st.Global()}}, nil
}

// Load validates src and assembles it.
func Load(ctx context.Context, src Source, opts ...Option) (*Generation, error) {
	o := newOptions(opts)
	raw, err := validate(ctx, src, o)
	if err != nil {
		return nil, err
	}
	return assembleRaw(ctx, raw, o)
}
