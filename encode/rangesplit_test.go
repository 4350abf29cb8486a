package encode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catenc/catenc/errs"
)

func TestRangeSplitter_Split(t *testing.T) {
	starts, ends, err := SplitRanges([]string{"0-20", "20-40", "60-80"})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 20, 60}, starts)
	require.Equal(t, []float64{20, 40, 80}, ends)
}

func TestRangeSplitter_Means(t *testing.T) {
	means, err := RangeMeans([]string{"0-20", "60-80"})
	require.NoError(t, err)
	require.Equal(t, []float64{10.0, 70.0}, means)
}

func TestRangeSplitter_FloatBounds(t *testing.T) {
	means, err := RangeMeans([]string{"0.5-1.5"})
	require.NoError(t, err)
	require.Equal(t, []float64{1.0}, means)
}

func TestRangeSplitter_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no separator", "abc"},
		{"two separators", "10-20-30"},
		{"non-numeric low", "abc-20"},
		{"non-numeric high", "10-xyz"},
		{"empty", ""},
		{"only separator", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SplitRanges([]string{tt.raw})
			require.ErrorIs(t, err, errs.ErrMalformedRange)

			_, err = RangeMeans([]string{tt.raw})
			require.ErrorIs(t, err, errs.ErrMalformedRange)
		})
	}
}

func TestRangeSplitter_ErrorNamesRow(t *testing.T) {
	_, _, err := SplitRanges([]string{"0-20", "bogus", "40-60"})
	require.ErrorIs(t, err, errs.ErrMalformedRange)
	require.Contains(t, err.Error(), "row 1")
}

func TestRangeSplitter_CustomSeparator(t *testing.T) {
	s, err := NewRangeSplitter(WithRangeSeparator(".."))
	require.NoError(t, err)

	starts, ends, err := s.Split([]string{"-10..10"})
	require.NoError(t, err)
	require.Equal(t, []float64{-10}, starts)
	require.Equal(t, []float64{10}, ends)
}

func TestRangeSplitter_EmptySeparator(t *testing.T) {
	_, err := NewRangeSplitter(WithRangeSeparator(""))
	require.Error(t, err)
}

func TestRangeSplitter_SurroundingWhitespace(t *testing.T) {
	means, err := RangeMeans([]string{" 0 - 20 "})
	require.NoError(t, err)
	require.Equal(t, []float64{10.0}, means)
}

func TestRangeSplitter_RowCountPreserved(t *testing.T) {
	column := []string{"0-1", "1-2", "2-3", "3-4"}
	starts, ends, err := SplitRanges(column)
	require.NoError(t, err)
	require.Len(t, starts, len(column))
	require.Len(t, ends, len(column))
}
