package encode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndicatorEncoder_MatchLabel(t *testing.T) {
	enc := NewIndicatorEncoder(MatchLabel("AA"))

	out := enc.Transform([]string{"AA", "AS", "B6", "AA"})
	require.Equal(t, []int{1, 0, 0, 1}, out)
}

func TestIndicatorEncoder_MatchContains(t *testing.T) {
	enc := NewIndicatorEncoder(MatchContains("Intl"))

	out := enc.Transform([]string{"JFK Intl", "LGA", "SFO Intl", "OAK"})
	require.Equal(t, []int{1, 0, 1, 0}, out)
}

func TestIndicatorEncoder_CustomMatcher(t *testing.T) {
	enc := NewIndicatorEncoder(func(label string) bool {
		return len(label) > 3
	})

	out := enc.Transform([]string{"AA", "long-label", "B6"})
	require.Equal(t, []int{0, 1, 0}, out)
}

func TestIndicatorEncoder_EmptyColumn(t *testing.T) {
	enc := NewIndicatorEncoder(MatchLabel("AA"))
	require.Empty(t, enc.Transform(nil))
}

func TestIndicatorEncoder_RowCountPreserved(t *testing.T) {
	column := []string{"a", "b", "a", "a"}
	enc := NewIndicatorEncoder(MatchLabel("a"))
	require.Len(t, enc.Transform(column), len(column))
}
