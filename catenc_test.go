package catenc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/encode"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/format"
	"github.com/catenc/catenc/frame"
)

const flightsCSV = `carrier,distance_bin
AA,0-20
AS,20-40
B6,60-80
AS,0-20
AA,40-60
`

func TestEndToEnd_FlightsTable(t *testing.T) {
	table, err := frame.FromCSV(strings.NewReader(flightsCSV))
	require.NoError(t, err)

	carriers, err := table.Strings("carrier")
	require.NoError(t, err)

	// Label codes.
	label, err := FitLabel(carriers)
	require.NoError(t, err)
	codes, err := label.Transform(carriers)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 1, 0}, codes)
	require.NoError(t, table.AttachInts("carrier_code", codes))

	// One-hot columns merged back by row position.
	oneHot, err := FitOneHot("carrier", carriers)
	require.NoError(t, err)
	rows, err := oneHot.Transform(carriers)
	require.NoError(t, err)
	require.NoError(t, table.AttachFloatMatrix(oneHot.ColumnNames(), rows))

	as, err := table.Floats("carrier_AS")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 1, 0}, as)

	// Binary bit columns.
	bin, err := FitBinary("carrier", carriers)
	require.NoError(t, err)
	bits, err := bin.Transform(carriers)
	require.NoError(t, err)
	require.Equal(t, 2, bin.Width())
	require.NoError(t, table.AttachBitMatrix(bin.ColumnNames(), bits))

	// Distance bins to midpoints.
	binsCol, err := table.Strings("distance_bin")
	require.NoError(t, err)
	means, err := encode.RangeMeans(binsCol)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 30, 70, 10, 50}, means)
	require.NoError(t, table.AttachFloats("distance_mean", means))

	require.Equal(t, []string{
		"carrier", "distance_bin", "carrier_code",
		"carrier_AA", "carrier_AS", "carrier_B6",
		"carrier_b0", "carrier_b1",
		"distance_mean",
	}, table.Names())
}

func TestEndToEnd_PersistAndRestore(t *testing.T) {
	carriers := []string{"AA", "AS", "B6", "AS", "AA"}

	enc, err := FitOneHot("carrier", carriers)
	require.NoError(t, err)
	want, err := enc.Transform(carriers)
	require.NoError(t, err)

	snap, err := enc.Snapshot()
	require.NoError(t, err)

	blob, err := Marshal(snap, artifact.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	decoded, err := Unmarshal(blob)
	require.NoError(t, err)
	require.Equal(t, VocabularyID([]string{"AA", "AS", "B6"}), decoded.Fingerprint())

	restored, err := encode.OneHotEncoderFromSnapshot(decoded)
	require.NoError(t, err)

	got, err := restored.Transform(carriers)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Applying the same fitted map twice is bit-identical.
	again, err := restored.Transform(carriers)
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEndToEnd_BackwardDifferenceOrdinal(t *testing.T) {
	column := []string{"short", "medium", "long", "medium", "short"}

	enc, err := FitBackwardDifference("haul", []string{"short", "medium", "long"}, column)
	require.NoError(t, err)
	require.Equal(t, []string{"haul_diff1", "haul_diff2"}, enc.ColumnNames())

	rows, err := enc.Transform(column)
	require.NoError(t, err)
	require.InDelta(t, -2.0/3, rows[0][0], 1e-12) // short is the lowest level
	require.InDelta(t, 1.0/3, rows[1][0], 1e-12)  // medium
	require.InDelta(t, 2.0/3, rows[2][1], 1e-12)  // long is the highest level
}

func TestFitLabel_SurfacesVocabularyErrors(t *testing.T) {
	_, err := FitLabel(nil)
	require.ErrorIs(t, err, errs.ErrEmptyVocabulary)
}

func TestVocabularyID_OrderSensitive(t *testing.T) {
	require.NotEqual(t,
		VocabularyID([]string{"AA", "AS"}),
		VocabularyID([]string{"AS", "AA"}))
	require.Equal(t,
		VocabularyID([]string{"AA", "AS"}),
		VocabularyID([]string{"AA", "AS"}))
}
