package yml2vocab

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/reoring/yml2vocab/internal/source"
)

// Format is the syntax of a Source.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Source is a vocabulary document to read.
type Source interface {
	Format() Format
	Reader() io.Reader
}

type readerSource struct {
	r      io.Reader
	format Format
}

func (s readerSource) Format() Format    { return s.format }
func (s readerSource) Reader() io.Reader { return s.r }

// bytesSource can be read any number of times.
type bytesSource struct {
	b      []byte
	format Format
}

func (s bytesSource) Format() Format    { return s.format }
func (s bytesSource) Reader() io.Reader { return bytes.NewReader(s.b) }

// YAMLBytes wraps a byte slice as a YAML Source.
func YAMLBytes(b []byte) Source { return bytesSource{b: b, format: FormatYAML} }

// YAMLReader wraps an io.Reader as a YAML Source.
func YAMLReader(r io.Reader) Source { return readerSource{r: r, format: FormatYAML} }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return bytesSource{b: b, format: FormatJSON} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return readerSource{r: r, format: FormatJSON} }

var errTooBig = errors.New("source exceeds the size limit")

// read decodes src into a JSON-like tree. Parse failures and size violations are
// KindInvalidSource; duplicate keys are KindValidation, like any schema issue.
func read(src Source, o Options) (any, error) {
	const op = "yml2vocab.read"
	var r io.Reader
	if src != nil {
		r = src.Reader()
	}
	if r == nil {
		return nil, &OpError{Op: op, Kind: KindInvalidSource, Err: Issues{{
			Path: "/", Code: CodeParseError, Message: o.Translator.Message(CodeParseError, nil), Hint: "nil source",
		}}}
	}
	if o.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, o.MaxBytes+1))
		if err != nil {
			return nil, &OpError{Op: op, Kind: KindInvalidSource, Err: err}
		}
		if int64(len(data)) > o.MaxBytes {
			return nil, &OpError{Op: op, Kind: KindInvalidSource, Err: Issues{{
				Path: "/", Code: CodeTooBig, Message: o.Translator.Message(CodeTooBig, nil),
				Params: map[string]any{"maxBytes": o.MaxBytes}, Cause: errTooBig,
			}}}
		}
		r = bytes.NewReader(data)
	}

	sopt := source.Options{AllowDuplicates: o.OnDuplicateKey != Error}
	if o.OnDuplicateKey == Warn {
		sopt.OnDuplicate = func(de *source.DuplicateKeyError) {
			o.Logger.Warn("vocab.source.duplicate_key", "key", de.Key, "path", de.Path, "line", de.Line)
		}
	}
	var (
		doc any
		err error
	)
	switch src.Format() {
	case FormatJSON:
		doc, err = source.ReadJSON(r, sopt)
	default:
		doc, err = source.ReadYAML(r, sopt)
	}
	if err == nil {
		return doc, nil
	}
	var de *source.DuplicateKeyError
	if errors.As(err, &de) {
		return nil, &OpError{Op: op, Kind: KindValidation, Err: Issues{{
			Path:    de.Path,
			Code:    CodeDuplicateKey,
			Message: o.Translator.Message(CodeDuplicateKey, map[string]string{"key": de.Key}),
			Params:  map[string]any{"key": de.Key, "line": de.Line, "column": de.Col, "firstLine": de.FirstLine},
			Cause:   de,
		}}}
	}
	return nil, &OpError{Op: op, Kind: KindInvalidSource, Err: Issues{{
		Path: "/", Code: CodeParseError, Message: o.Translator.Message(CodeParseError, nil),
		Hint: src.Format().String(), Cause: err,
	}}}
}
