package encode

import (
	"fmt"

	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/format"
	"github.com/catenc/catenc/internal/options"
	"github.com/catenc/catenc/vocab"
)

// OneHotEncoder expands a column into K indicator columns, one per
// vocabulary entry in rank order. Each row's output vector has Hamming
// weight exactly 1 over the fitted vocabulary.
//
// Strict mode is the default: an unseen label at transform time fails with
// errs.ErrUnseenLabel, since no output column exists for it. WithLenient
// switches to emitting an all-zero row instead.
type OneHotEncoder struct {
	vocab   *vocab.Vocabulary
	feature string
	lenient bool
}

// OneHotOption configures a OneHotEncoder.
type OneHotOption = options.Option[*OneHotEncoder]

// WithLenient makes Transform emit an all-zero indicator row for labels
// outside the fitted vocabulary instead of failing.
func WithLenient() OneHotOption {
	return options.NoError(func(e *OneHotEncoder) {
		e.lenient = true
	})
}

// NewOneHotEncoder creates an unfitted one-hot encoder. Output columns are
// named "<feature>_<label>".
func NewOneHotEncoder(feature string, opts ...OneHotOption) (*OneHotEncoder, error) {
	e := &OneHotEncoder{feature: feature}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Fit derives the vocabulary from a training column.
func (e *OneHotEncoder) Fit(column []string, opts ...vocab.Option) error {
	v, err := vocab.New(column, opts...)
	if err != nil {
		return err
	}
	e.vocab = v

	return nil
}

// ColumnNames returns the output column names "<feature>_<label>" in rank
// order, or nil before Fit.
func (e *OneHotEncoder) ColumnNames() []string {
	if e.vocab == nil {
		return nil
	}

	labels := e.vocab.Labels()
	names := make([]string, len(labels))
	for i, label := range labels {
		names[i] = e.feature + "_" + label
	}

	return names
}

// Transform expands each row into its indicator vector.
//
// Returns:
//   - [][]float64: One length-K vector per input row
//   - error: errs.ErrNotFitted before Fit; errs.ErrUnseenLabel for an
//     out-of-vocabulary label unless the encoder is lenient
func (e *OneHotEncoder) Transform(column []string) ([][]float64, error) {
	if e.vocab == nil {
		return nil, errs.ErrNotFitted
	}

	k := e.vocab.Len()
	out := make([][]float64, len(column))
	for i, label := range column {
		row := make([]float64, k)
		rank, ok := e.vocab.Rank(label)
		switch {
		case ok:
			row[rank] = 1
		case !e.lenient:
			return nil, fmt.Errorf("%w: %q at row %d", errs.ErrUnseenLabel, label, i)
		}
		out[i] = row
	}

	return out, nil
}

// FitTransform fits on column and transforms it in one call.
func (e *OneHotEncoder) FitTransform(column []string, opts ...vocab.Option) ([][]float64, error) {
	if err := e.Fit(column, opts...); err != nil {
		return nil, err
	}

	return e.Transform(column)
}

// Vocabulary returns the fitted vocabulary, or nil before Fit.
func (e *OneHotEncoder) Vocabulary() *vocab.Vocabulary {
	return e.vocab
}

// Snapshot captures the fitted state for persistence.
func (e *OneHotEncoder) Snapshot() (artifact.Snapshot, error) {
	if e.vocab == nil {
		return artifact.Snapshot{}, errs.ErrNotFitted
	}

	return artifact.Snapshot{
		Scheme:  format.SchemeOneHot,
		Feature: e.feature,
		Labels:  e.vocab.Labels(),
		Lenient: e.lenient,
	}, nil
}

// OneHotEncoderFromSnapshot restores a fitted one-hot encoder from a
// decoded artifact snapshot.
func OneHotEncoderFromSnapshot(s artifact.Snapshot) (*OneHotEncoder, error) {
	if s.Scheme != format.SchemeOneHot {
		return nil, fmt.Errorf("%w: snapshot holds %s, want %s", errs.ErrInvalidScheme, s.Scheme, format.SchemeOneHot)
	}

	v, err := vocab.FromLabels(s.Labels)
	if err != nil {
		return nil, err
	}

	return &OneHotEncoder{vocab: v, feature: s.Feature, lenient: s.Lenient}, nil
}
