// Package model holds the data shapes shared by the vocabulary engine.
//
// There are three layers:
//
//   - RawVocab / RawEntry: the authored document after schema validation. Fields that
//     may be written either as a single value or as a list are kept as Multi values so
//     that "absent", "empty list" and "bare scalar" remain distinguishable.
//   - Entry: a term after finalization. Lists are plain slices; a nil slice means the
//     field was absent, an empty non-nil slice means it was authored empty.
//   - Vocab and its collections: the normalized, cross-referenced output handed to
//     serializers, together with the per-run bookkeeping in Global.
package model
