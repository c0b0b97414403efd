package yml2vocab

import (
	"errors"
	"fmt"

	"github.com/reoring/yml2vocab/internal/assemble"
	"github.com/reoring/yml2vocab/schema"
)

// Issue and Issues are the validation error model; see package schema.
type (
	Issue  = schema.Issue
	Issues = schema.Issues
)

// Issue codes.
const (
	CodeInvalidType   = schema.CodeInvalidType
	CodeRequired      = schema.CodeRequired
	CodeUnknownKey    = schema.CodeUnknownKey
	CodeDuplicateKey  = schema.CodeDuplicateKey
	CodeInvalidEnum   = schema.CodeInvalidEnum
	CodeInvalidFormat = schema.CodeInvalidFormat
	CodeUnionMismatch = schema.CodeUnionMismatch
	CodeUniqueness    = schema.CodeUniqueness
	CodeParseError    = schema.CodeParseError
	CodeTooBig        = schema.CodeTooBig
)

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) { return schema.AsIssues(err) }

// Sentinel errors for broad classification.
var (
	ErrInvalidSource  = errors.New("invalid source")
	ErrValidation     = errors.New("schema validation failed")
	ErrMissingSection = assemble.ErrMissingSection
	ErrMissingScalar  = assemble.ErrMissingScalar
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidSource  ErrorKind = "invalid_source"
	KindValidation     ErrorKind = "validation"
	KindMissingSection ErrorKind = "missing_section"
	KindMissingScalar  ErrorKind = "missing_scalar"
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidSource:  ErrInvalidSource,
	KindValidation:     ErrValidation,
	KindMissingSection: ErrMissingSection,
	KindMissingScalar:  ErrMissingScalar,
}

// OpError wraps an underlying error with operation context and a kind. For
// KindValidation and KindInvalidSource the wrapped error is Issues.
type OpError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind helps callers classify errors.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMissingSection):
		return KindMissingSection
	case errors.Is(err, ErrMissingScalar):
		return KindMissingScalar
	}
	return ""
}
