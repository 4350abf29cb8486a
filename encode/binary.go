package encode

import (
	"fmt"
	"math/bits"

	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/format"
	"github.com/catenc/catenc/vocab"
)

// BinaryEncoder packs each label's vocabulary rank into a fixed-width base-2
// bit vector of B = ceil(log2(K)) bits (minimum 1), most-significant bit
// first. This trades one-hot's O(K) columns for O(log K) at the cost of an
// artificial numeric adjacency between unrelated categories that happen to
// share bit patterns; that tradeoff is inherent to the scheme.
type BinaryEncoder struct {
	vocab   *vocab.Vocabulary
	feature string
	width   int
}

// NewBinaryEncoder creates an unfitted binary encoder. Output columns are
// named "<feature>_b<i>", with b0 the most-significant bit.
func NewBinaryEncoder(feature string) *BinaryEncoder {
	return &BinaryEncoder{feature: feature}
}

// bitWidth returns the number of bits needed to represent ranks [0, k-1].
func bitWidth(k int) int {
	if k <= 2 {
		return 1
	}

	return bits.Len(uint(k - 1)) //nolint:gosec
}

// Fit derives the vocabulary and bit width from a training column.
func (e *BinaryEncoder) Fit(column []string, opts ...vocab.Option) error {
	v, err := vocab.New(column, opts...)
	if err != nil {
		return err
	}
	e.vocab = v
	e.width = bitWidth(v.Len())

	return nil
}

// Width returns the fitted bit width B, or 0 before Fit.
func (e *BinaryEncoder) Width() int {
	return e.width
}

// ColumnNames returns the output column names "<feature>_b<i>" from the
// most-significant bit down, or nil before Fit.
func (e *BinaryEncoder) ColumnNames() []string {
	if e.vocab == nil {
		return nil
	}

	names := make([]string, e.width)
	for i := range names {
		names[i] = fmt.Sprintf("%s_b%d", e.feature, i)
	}

	return names
}

// Transform packs each row's rank into its bit vector.
//
// Returns:
//   - [][]uint8: One length-B bit vector per input row, MSB first
//   - error: errs.ErrNotFitted before Fit, errs.ErrUnseenLabel for a label
//     outside the fitted vocabulary
func (e *BinaryEncoder) Transform(column []string) ([][]uint8, error) {
	if e.vocab == nil {
		return nil, errs.ErrNotFitted
	}

	out := make([][]uint8, len(column))
	for i, label := range column {
		rank, ok := e.vocab.Rank(label)
		if !ok {
			return nil, fmt.Errorf("%w: %q at row %d", errs.ErrUnseenLabel, label, i)
		}

		row := make([]uint8, e.width)
		for j := range row {
			row[j] = uint8(rank>>(e.width-1-j)) & 1 //nolint:gosec
		}
		out[i] = row
	}

	return out, nil
}

// FitTransform fits on column and transforms it in one call.
func (e *BinaryEncoder) FitTransform(column []string, opts ...vocab.Option) ([][]uint8, error) {
	if err := e.Fit(column, opts...); err != nil {
		return nil, err
	}

	return e.Transform(column)
}

// Decode maps a bit vector back to its label. The vector must have the
// fitted width, hold only 0/1 values, and decode to a rank that exists in
// the vocabulary; ranks in the unused tail of the code space (when K is not
// a power of two) are rejected.
func (e *BinaryEncoder) Decode(row []uint8) (string, error) {
	if e.vocab == nil {
		return "", errs.ErrNotFitted
	}
	if len(row) != e.width {
		return "", fmt.Errorf("%w: got %d bits, want %d", errs.ErrInvalidBitVector, len(row), e.width)
	}

	rank := 0
	for _, bit := range row {
		if bit > 1 {
			return "", fmt.Errorf("%w: bit value %d", errs.ErrInvalidBitVector, bit)
		}
		rank = rank<<1 | int(bit)
	}

	label, ok := e.vocab.Label(rank)
	if !ok {
		return "", fmt.Errorf("%w: rank %d outside vocabulary of %d", errs.ErrInvalidBitVector, rank, e.vocab.Len())
	}

	return label, nil
}

// Vocabulary returns the fitted vocabulary, or nil before Fit.
func (e *BinaryEncoder) Vocabulary() *vocab.Vocabulary {
	return e.vocab
}

// Snapshot captures the fitted state for persistence.
func (e *BinaryEncoder) Snapshot() (artifact.Snapshot, error) {
	if e.vocab == nil {
		return artifact.Snapshot{}, errs.ErrNotFitted
	}

	return artifact.Snapshot{
		Scheme:  format.SchemeBinary,
		Feature: e.feature,
		Labels:  e.vocab.Labels(),
	}, nil
}

// BinaryEncoderFromSnapshot restores a fitted binary encoder from a decoded
// artifact snapshot. The bit width is recomputed from the vocabulary size.
func BinaryEncoderFromSnapshot(s artifact.Snapshot) (*BinaryEncoder, error) {
	if s.Scheme != format.SchemeBinary {
		return nil, fmt.Errorf("%w: snapshot holds %s, want %s", errs.ErrInvalidScheme, s.Scheme, format.SchemeBinary)
	}

	v, err := vocab.FromLabels(s.Labels)
	if err != nil {
		return nil, err
	}

	return &BinaryEncoder{vocab: v, feature: s.Feature, width: bitWidth(v.Len())}, nil
}
