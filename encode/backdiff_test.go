package encode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/vocab"
)

func TestBackwardDifference_ContrastMatrixK3(t *testing.T) {
	enc := NewBackwardDifferenceEncoder("carrier")
	require.NoError(t, enc.Fit([]string{"AA", "AS", "B6"}))

	m := enc.ContrastMatrix()
	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)

	want := [][]float64{
		{-2.0 / 3, -1.0 / 3},
		{1.0 / 3, -1.0 / 3},
		{1.0 / 3, 2.0 / 3},
	}
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], m.At(i, j), 1e-12, "at (%d,%d)", i, j)
		}
	}
}

func TestBackwardDifference_ContrastMatrixK4(t *testing.T) {
	enc := NewBackwardDifferenceEncoder("level")
	require.NoError(t, enc.Fit(
		[]string{"freshman", "sophomore", "junior", "senior"},
		vocab.WithOrder([]string{"freshman", "sophomore", "junior", "senior"}),
	))

	m := enc.ContrastMatrix()
	want := [][]float64{
		{-3.0 / 4, -1.0 / 2, -1.0 / 4},
		{1.0 / 4, -1.0 / 2, -1.0 / 4},
		{1.0 / 4, 1.0 / 2, -1.0 / 4},
		{1.0 / 4, 1.0 / 2, 3.0 / 4},
	}
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], m.At(i, j), 1e-12, "at (%d,%d)", i, j)
		}
	}
}

func TestBackwardDifference_ColumnsSumToZero(t *testing.T) {
	// Contrast columns are centered: each sums to zero over the levels.
	labels := []string{"a", "b", "c", "d", "e", "f", "g"}
	for k := 2; k <= len(labels); k++ {
		enc := NewBackwardDifferenceEncoder("f")
		require.NoError(t, enc.Fit(labels[:k]))

		m := enc.ContrastMatrix()
		for j := 0; j < k-1; j++ {
			sum := 0.0
			for i := 0; i < k; i++ {
				sum += m.At(i, j)
			}
			require.InDelta(t, 0, sum, 1e-12, "K=%d column %d", k, j)
		}
	}
}

func TestBackwardDifference_AdjacentLevelContrast(t *testing.T) {
	// The difference between the contrast rows of adjacent ranks is the unit
	// vector for the column comparing them, which is what makes each
	// regression coefficient the mean difference between consecutive levels.
	enc := NewBackwardDifferenceEncoder("f")
	require.NoError(t, enc.Fit([]string{"a", "b", "c", "d", "e"}))

	m := enc.ContrastMatrix()
	k, cols := m.Dims()
	for i := 1; i < k; i++ {
		for j := 0; j < cols; j++ {
			diff := m.At(i, j) - m.At(i-1, j)
			if j == i-1 {
				require.InDelta(t, 1, diff, 1e-12, "rank %d column %d", i, j)
			} else {
				require.InDelta(t, 0, diff, 1e-12, "rank %d column %d", i, j)
			}
		}
	}
}

func TestBackwardDifference_Transform(t *testing.T) {
	enc := NewBackwardDifferenceEncoder("carrier")
	rows, err := enc.FitTransform([]string{"AS", "AA", "B6"})
	require.NoError(t, err)

	require.Equal(t, []string{"carrier_diff1", "carrier_diff2"}, enc.ColumnNames())
	require.Len(t, rows, 3)
	require.InDelta(t, 1.0/3, rows[0][0], 1e-12) // AS has rank 1
	require.InDelta(t, -1.0/3, rows[0][1], 1e-12)
	require.InDelta(t, -2.0/3, rows[1][0], 1e-12) // AA has rank 0
	require.InDelta(t, 1.0/3, rows[2][0], 1e-12) // B6 has rank 2
	require.InDelta(t, 2.0/3, rows[2][1], 1e-12)
}

func TestBackwardDifference_PermutedEqualSetSameCoefficients(t *testing.T) {
	order := []string{"low", "mid", "high"}

	enc1 := NewBackwardDifferenceEncoder("f")
	require.NoError(t, enc1.Fit([]string{"low", "mid", "high", "mid"}, vocab.WithOrder(order)))

	enc2 := NewBackwardDifferenceEncoder("f")
	require.NoError(t, enc2.Fit([]string{"high", "high", "low", "mid"}, vocab.WithOrder(order)))

	probe := []string{"low", "mid", "high"}
	rows1, err := enc1.Transform(probe)
	require.NoError(t, err)
	rows2, err := enc2.Transform(probe)
	require.NoError(t, err)
	require.Equal(t, rows1, rows2)
}

func TestBackwardDifference_SingleLevel(t *testing.T) {
	enc := NewBackwardDifferenceEncoder("f")
	err := enc.Fit([]string{"only", "only"})
	require.ErrorIs(t, err, errs.ErrNotEnoughLevels)
}

func TestBackwardDifference_UnseenLabel(t *testing.T) {
	enc := NewBackwardDifferenceEncoder("f")
	require.NoError(t, enc.Fit([]string{"a", "b"}))

	_, err := enc.Transform([]string{"c"})
	require.ErrorIs(t, err, errs.ErrUnseenLabel)
}

func TestBackwardDifference_NotFitted(t *testing.T) {
	enc := NewBackwardDifferenceEncoder("f")
	_, err := enc.Transform([]string{"a"})
	require.ErrorIs(t, err, errs.ErrNotFitted)
	require.Nil(t, enc.ContrastMatrix())
}

func TestBackwardDifference_SnapshotRoundTrip(t *testing.T) {
	order := []string{"low", "mid", "high"}
	column := []string{"mid", "low", "high", "mid"}

	enc := NewBackwardDifferenceEncoder("level")
	require.NoError(t, enc.Fit(column, vocab.WithOrder(order)))
	want, err := enc.Transform(column)
	require.NoError(t, err)

	snap, err := enc.Snapshot()
	require.NoError(t, err)
	require.Equal(t, order, snap.Labels)

	blob, err := artifact.Encode(snap)
	require.NoError(t, err)
	decoded, err := artifact.Decode(blob)
	require.NoError(t, err)

	restored, err := BackwardDifferenceEncoderFromSnapshot(decoded)
	require.NoError(t, err)

	got, err := restored.Transform(column)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
