// Package errs defines the sentinel errors shared across catenc packages.
//
// All errors are plain sentinels suitable for errors.Is checks. Call sites
// wrap them with additional context using fmt.Errorf("%w: ...").
package errs

import "errors"

// Vocabulary and encoding errors.
var (
	// ErrEmptyVocabulary indicates a fit was attempted on a zero-row column.
	ErrEmptyVocabulary = errors.New("empty vocabulary")

	// ErrMissingValue indicates the configured missing-value sentinel was
	// found in a column. Imputation must happen before encoding.
	ErrMissingValue = errors.New("missing value sentinel in column")

	// ErrUnmappedLabel indicates a replace encoder met a label absent from
	// the user-supplied mapping.
	ErrUnmappedLabel = errors.New("label absent from mapping")

	// ErrUnseenLabel indicates a transform met a label that was not part of
	// the fit-time vocabulary.
	ErrUnseenLabel = errors.New("label not in fitted vocabulary")

	// ErrMalformedRange indicates a range string could not be split into two
	// numeric bounds.
	ErrMalformedRange = errors.New("malformed range string")

	// ErrNotFitted indicates Transform was called before Fit.
	ErrNotFitted = errors.New("encoder not fitted")

	// ErrNotEnoughLevels indicates the vocabulary is too small for the
	// requested scheme (contrast coding needs at least two levels).
	ErrNotEnoughLevels = errors.New("vocabulary has too few levels")

	// ErrIncompleteMapping indicates a replace mapping does not cover every
	// vocabulary entry.
	ErrIncompleteMapping = errors.New("mapping does not cover vocabulary")

	// ErrUnorderedLabel indicates an explicit ordering does not cover an
	// observed label, or names a label that was never observed.
	ErrUnorderedLabel = errors.New("ordering does not match observed labels")

	// ErrDuplicateOrderLabel indicates an explicit ordering lists a label twice.
	ErrDuplicateOrderLabel = errors.New("duplicate label in ordering")

	// ErrInvalidBitVector indicates a bit vector cannot be decoded back to a
	// vocabulary entry.
	ErrInvalidBitVector = errors.New("invalid bit vector")
)

// Artifact errors.
var (
	ErrTruncatedArtifact  = errors.New("artifact data truncated")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported artifact version")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrVocabularyMismatch = errors.New("vocabulary fingerprint mismatch")
	ErrInvalidScheme      = errors.New("invalid encoding scheme")
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Frame errors.
var (
	ErrRowCountMismatch = errors.New("row count mismatch")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrColumnType       = errors.New("column has a different type")
)
