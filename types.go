package yml2vocab

import (
	"io"
	"log/slog"
	"time"

	"github.com/reoring/yml2vocab/i18n"
	"github.com/reoring/yml2vocab/model"
)

// Severity expresses how a duplicate key in the source is treated.
type Severity int

const (
	Ignore Severity = iota // Keep the last value silently.
	Warn                   // Keep the last value and log a warning.
	Error                  // Reject the document.
)

// Options bundles the settings of a run.
type Options struct {
	// Logger receives debug and warning events; the default discards them.
	Logger *slog.Logger
	// Now is the clock used for the dc:date stamp.
	Now func() time.Time
	// Translator renders issue messages; the default is the i18n package Translator.
	Translator i18n.Translator
	// OnDuplicateKey decides what a repeated mapping key does (default Error).
	OnDuplicateKey Severity
	// MaxBytes caps the size of the source; 0 means no limit.
	MaxBytes int64
	// FailFast stops validation at the first issue.
	FailFast bool
}

// Option configures a run.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithNow sets the clock used for the dc:date stamp.
func WithNow(now func() time.Time) Option { return func(o *Options) { o.Now = now } }

// WithLanguage renders issue messages with the built-in dictionary for lang ("en"/"ja").
func WithLanguage(lang string) Option {
	return func(o *Options) { o.Translator = i18n.Dictionary(lang) }
}

// WithTranslator renders issue messages with tr.
func WithTranslator(tr i18n.Translator) Option { return func(o *Options) { o.Translator = tr } }

// WithDuplicateKeys sets the treatment of repeated mapping keys.
func WithDuplicateKeys(s Severity) Option { return func(o *Options) { o.OnDuplicateKey = s } }

// WithMaxBytes caps the size of the source.
func WithMaxBytes(n int64) Option { return func(o *Options) { o.MaxBytes = n } }

// WithFailFast stops validation at the first issue.
func WithFailFast(enabled bool) Option { return func(o *Options) { o.FailFast = enabled } }

func newOptions(opts []Option) Options {
	o := Options{OnDuplicateKey: Error}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Translator == nil {
		o.Translator = i18n.Current()
	}
	return o
}

// RawVocab is the validated raw structure accepted by Assemble.
type RawVocab = model.RawVocab
