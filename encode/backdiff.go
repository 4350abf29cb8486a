package encode

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/format"
	"github.com/catenc/catenc/vocab"
)

// BackwardDifferenceEncoder produces K-1 contrast columns implementing
// backward-difference contrast coding: in a regression, the coefficient of
// column j compares the mean outcome at level j against level j-1.
//
// Coefficients follow the conventional contrast matrix. For vocabulary rank
// i (0-indexed) and output column j (1-indexed, j in [1, K-1]):
//
//	value = -(K-j)/K  for i <  j
//	value =    j/K    for i >= j
//
// The scheme assumes the vocabulary ordering is meaningful. Fit a column
// with vocab.WithOrder when levels are ordinal; falling back to the
// canonical lexicographic order on a nominal feature yields contrasts
// between alphabetically adjacent levels, which is rarely what is wanted.
type BackwardDifferenceEncoder struct {
	vocab   *vocab.Vocabulary
	feature string
}

// NewBackwardDifferenceEncoder creates an unfitted backward-difference
// encoder. Output columns are named "<feature>_diff<j>".
func NewBackwardDifferenceEncoder(feature string) *BackwardDifferenceEncoder {
	return &BackwardDifferenceEncoder{feature: feature}
}

// Fit derives the vocabulary from a training column. The vocabulary needs
// at least two levels; a single-level column has no adjacent pair to
// contrast.
func (e *BackwardDifferenceEncoder) Fit(column []string, opts ...vocab.Option) error {
	v, err := vocab.New(column, opts...)
	if err != nil {
		return err
	}
	if v.Len() < 2 {
		return fmt.Errorf("%w: backward-difference contrast needs at least 2 levels, got %d", errs.ErrNotEnoughLevels, v.Len())
	}
	e.vocab = v

	return nil
}

// ColumnNames returns the output column names "<feature>_diff<j>" for
// j in [1, K-1], or nil before Fit.
func (e *BackwardDifferenceEncoder) ColumnNames() []string {
	if e.vocab == nil {
		return nil
	}

	names := make([]string, e.vocab.Len()-1)
	for j := range names {
		names[j] = fmt.Sprintf("%s_diff%d", e.feature, j+1)
	}

	return names
}

// ContrastMatrix returns the K×(K-1) backward-difference contrast matrix.
// Row i holds the contrast vector emitted for vocabulary rank i.
func (e *BackwardDifferenceEncoder) ContrastMatrix() *mat.Dense {
	if e.vocab == nil {
		return nil
	}

	k := e.vocab.Len()
	m := mat.NewDense(k, k-1, nil)
	for i := 0; i < k; i++ {
		for j := 1; j < k; j++ {
			if i < j {
				m.Set(i, j-1, -float64(k-j)/float64(k))
			} else {
				m.Set(i, j-1, float64(j)/float64(k))
			}
		}
	}

	return m
}

// Transform maps each row's label to its contrast vector.
//
// Returns:
//   - [][]float64: One length-(K-1) vector per input row
//   - error: errs.ErrNotFitted before Fit, errs.ErrUnseenLabel for a label
//     outside the fitted vocabulary
func (e *BackwardDifferenceEncoder) Transform(column []string) ([][]float64, error) {
	if e.vocab == nil {
		return nil, errs.ErrNotFitted
	}

	contrasts := e.ContrastMatrix()
	out := make([][]float64, len(column))
	for i, label := range column {
		rank, ok := e.vocab.Rank(label)
		if !ok {
			return nil, fmt.Errorf("%w: %q at row %d", errs.ErrUnseenLabel, label, i)
		}

		row := make([]float64, e.vocab.Len()-1)
		mat.Row(row, rank, contrasts)
		out[i] = row
	}

	return out, nil
}

// FitTransform fits on column and transforms it in one call.
func (e *BackwardDifferenceEncoder) FitTransform(column []string, opts ...vocab.Option) ([][]float64, error) {
	if err := e.Fit(column, opts...); err != nil {
		return nil, err
	}

	return e.Transform(column)
}

// Vocabulary returns the fitted vocabulary, or nil before Fit.
func (e *BackwardDifferenceEncoder) Vocabulary() *vocab.Vocabulary {
	return e.vocab
}

// Snapshot captures the fitted state for persistence.
func (e *BackwardDifferenceEncoder) Snapshot() (artifact.Snapshot, error) {
	if e.vocab == nil {
		return artifact.Snapshot{}, errs.ErrNotFitted
	}

	return artifact.Snapshot{
		Scheme:  format.SchemeBackwardDifference,
		Feature: e.feature,
		Labels:  e.vocab.Labels(),
	}, nil
}

// BackwardDifferenceEncoderFromSnapshot restores a fitted encoder from a
// decoded artifact snapshot.
func BackwardDifferenceEncoderFromSnapshot(s artifact.Snapshot) (*BackwardDifferenceEncoder, error) {
	if s.Scheme != format.SchemeBackwardDifference {
		return nil, fmt.Errorf("%w: snapshot holds %s, want %s", errs.ErrInvalidScheme, s.Scheme, format.SchemeBackwardDifference)
	}

	v, err := vocab.FromLabels(s.Labels)
	if err != nil {
		return nil, err
	}
	if v.Len() < 2 {
		return nil, fmt.Errorf("%w: snapshot holds %d level(s)", errs.ErrNotEnoughLevels, v.Len())
	}

	return &BackwardDifferenceEncoder{vocab: v, feature: s.Feature}, nil
}
