package encode

import (
	"fmt"

	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/format"
	"github.com/catenc/catenc/vocab"
)

// LabelEncoder assigns each vocabulary entry its zero-based rank, producing
// one integer in [0, K-1] per row. Rank order follows the vocabulary's
// canonical (or explicitly supplied) order, so code(a) < code(b) exactly
// when a precedes b in that order.
type LabelEncoder struct {
	vocab *vocab.Vocabulary
}

// NewLabelEncoder creates an unfitted label encoder.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit derives the vocabulary from a training column. Re-fitting on the same
// column yields the same codes.
func (e *LabelEncoder) Fit(column []string, opts ...vocab.Option) error {
	v, err := vocab.New(column, opts...)
	if err != nil {
		return err
	}
	e.vocab = v

	return nil
}

// Transform maps each row's label to its fitted rank.
//
// Returns:
//   - []int: One code per input row
//   - error: errs.ErrNotFitted before Fit, errs.ErrUnseenLabel for a label
//     outside the fitted vocabulary
func (e *LabelEncoder) Transform(column []string) ([]int, error) {
	if e.vocab == nil {
		return nil, errs.ErrNotFitted
	}

	out := make([]int, len(column))
	for i, label := range column {
		rank, ok := e.vocab.Rank(label)
		if !ok {
			return nil, fmt.Errorf("%w: %q at row %d", errs.ErrUnseenLabel, label, i)
		}
		out[i] = rank
	}

	return out, nil
}

// FitTransform fits on column and transforms it in one call.
func (e *LabelEncoder) FitTransform(column []string, opts ...vocab.Option) ([]int, error) {
	if err := e.Fit(column, opts...); err != nil {
		return nil, err
	}

	return e.Transform(column)
}

// Vocabulary returns the fitted vocabulary, or nil before Fit.
func (e *LabelEncoder) Vocabulary() *vocab.Vocabulary {
	return e.vocab
}

// Snapshot captures the fitted state for persistence.
func (e *LabelEncoder) Snapshot() (artifact.Snapshot, error) {
	if e.vocab == nil {
		return artifact.Snapshot{}, errs.ErrNotFitted
	}

	return artifact.Snapshot{
		Scheme: format.SchemeLabel,
		Labels: e.vocab.Labels(),
	}, nil
}

// LabelEncoderFromSnapshot restores a fitted label encoder from a decoded
// artifact snapshot.
func LabelEncoderFromSnapshot(s artifact.Snapshot) (*LabelEncoder, error) {
	if s.Scheme != format.SchemeLabel {
		return nil, fmt.Errorf("%w: snapshot holds %s, want %s", errs.ErrInvalidScheme, s.Scheme, format.SchemeLabel)
	}

	v, err := vocab.FromLabels(s.Labels)
	if err != nil {
		return nil, err
	}

	return &LabelEncoder{vocab: v}, nil
}
