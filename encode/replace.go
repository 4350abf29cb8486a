package encode

import (
	"fmt"

	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/format"
	"github.com/catenc/catenc/vocab"
)

// ReplaceEncoder maps labels to caller-chosen numeric codes by direct
// lookup. Codes carry domain meaning and need not be contiguous or
// zero-based; this is the escape hatch for domain-specific numbering.
//
// The mapping is copied at construction and never mutated afterwards, so a
// single encoder is safe for concurrent transforms.
type ReplaceEncoder struct {
	mapping map[string]float64
}

// NewReplaceEncoder creates a replace encoder over a copy of mapping.
func NewReplaceEncoder(mapping map[string]float64) *ReplaceEncoder {
	m := make(map[string]float64, len(mapping))
	for label, code := range mapping {
		m[label] = code
	}

	return &ReplaceEncoder{mapping: m}
}

// Validate checks totality of the mapping against a vocabulary: every
// vocabulary entry must have a code. Checking at fit time turns what would
// be a per-row lookup failure into an upfront error.
func (e *ReplaceEncoder) Validate(v *vocab.Vocabulary) error {
	for _, label := range v.Labels() {
		if _, ok := e.mapping[label]; !ok {
			return fmt.Errorf("%w: %q has no code", errs.ErrIncompleteMapping, label)
		}
	}

	return nil
}

// Transform maps each row's label through the mapping.
//
// Returns:
//   - []float64: One code per input row
//   - error: errs.ErrUnmappedLabel for a label absent from the mapping
func (e *ReplaceEncoder) Transform(column []string) ([]float64, error) {
	out := make([]float64, len(column))
	for i, label := range column {
		code, ok := e.mapping[label]
		if !ok {
			return nil, fmt.Errorf("%w: %q at row %d", errs.ErrUnmappedLabel, label, i)
		}
		out[i] = code
	}

	return out, nil
}

// Mapping returns a copy of the label-to-code mapping.
func (e *ReplaceEncoder) Mapping() map[string]float64 {
	m := make(map[string]float64, len(e.mapping))
	for label, code := range e.mapping {
		m[label] = code
	}

	return m
}

// Snapshot captures the mapping for persistence.
func (e *ReplaceEncoder) Snapshot() artifact.Snapshot {
	return artifact.Snapshot{
		Scheme:  format.SchemeReplace,
		Mapping: e.Mapping(),
	}
}

// ReplaceEncoderFromSnapshot restores a replace encoder from a decoded
// artifact snapshot.
func ReplaceEncoderFromSnapshot(s artifact.Snapshot) (*ReplaceEncoder, error) {
	if s.Scheme != format.SchemeReplace {
		return nil, fmt.Errorf("%w: snapshot holds %s, want %s", errs.ErrInvalidScheme, s.Scheme, format.SchemeReplace)
	}

	return NewReplaceEncoder(s.Mapping), nil
}
