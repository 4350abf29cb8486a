package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/internal/options"
)

// RangeSplitter turns strings of the form "<low>-<high>" into numeric
// scalars: either the two bounds, or their midpoint.
//
// A row must contain exactly one separator and both sides must parse as
// numbers. Reversed bounds ("20-0") are parsed as-is; bin columns in the
// wild are assumed ascending and the splitter does not second-guess them.
// Negative bounds are unrepresentable with the default "-" separator; use
// WithRangeSeparator for data that needs them.
type RangeSplitter struct {
	sep string
}

// RangeOption configures a RangeSplitter.
type RangeOption = options.Option[*RangeSplitter]

// WithRangeSeparator overrides the bound separator (default "-").
func WithRangeSeparator(sep string) RangeOption {
	return options.New(func(s *RangeSplitter) error {
		if sep == "" {
			return fmt.Errorf("range separator must not be empty")
		}
		s.sep = sep

		return nil
	})
}

// NewRangeSplitter creates a range splitter.
func NewRangeSplitter(opts ...RangeOption) (*RangeSplitter, error) {
	s := &RangeSplitter{sep: "-"}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *RangeSplitter) parse(raw string, row int) (float64, float64, error) {
	parts := strings.Split(raw, s.sep)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q at row %d: expected exactly one %q",
			errs.ErrMalformedRange, raw, row, s.sep)
	}

	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q at row %d: low bound: %v", errs.ErrMalformedRange, raw, row, err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q at row %d: high bound: %v", errs.ErrMalformedRange, raw, row, err)
	}

	return low, high, nil
}

// Split parses each row into its low and high bounds.
//
// Returns:
//   - []float64: Low bound per row
//   - []float64: High bound per row
//   - error: errs.ErrMalformedRange for an unparsable row
func (s *RangeSplitter) Split(column []string) ([]float64, []float64, error) {
	starts := make([]float64, len(column))
	ends := make([]float64, len(column))
	for i, raw := range column {
		low, high, err := s.parse(raw, i)
		if err != nil {
			return nil, nil, err
		}
		starts[i] = low
		ends[i] = high
	}

	return starts, ends, nil
}

// Means collapses each row to the midpoint (low+high)/2.
func (s *RangeSplitter) Means(column []string) ([]float64, error) {
	out := make([]float64, len(column))
	for i, raw := range column {
		low, high, err := s.parse(raw, i)
		if err != nil {
			return nil, err
		}
		out[i] = (low + high) / 2
	}

	return out, nil
}

// SplitRanges splits a column of "<low>-<high>" strings with the default
// separator.
func SplitRanges(column []string) ([]float64, []float64, error) {
	s, _ := NewRangeSplitter()

	return s.Split(column)
}

// RangeMeans collapses a column of "<low>-<high>" strings to midpoints with
// the default separator.
func RangeMeans(column []string) ([]float64, error) {
	s, _ := NewRangeSplitter()

	return s.Means(column)
}
