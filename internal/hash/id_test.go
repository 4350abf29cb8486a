package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestLabels_Deterministic(t *testing.T) {
	labels := []string{"AA", "AS", "B6"}
	require.Equal(t, Labels(labels), Labels([]string{"AA", "AS", "B6"}))
}

func TestLabels_OrderSensitive(t *testing.T) {
	require.NotEqual(t, Labels([]string{"AA", "AS"}), Labels([]string{"AS", "AA"}))
}

func TestLabels_BoundaryUnambiguous(t *testing.T) {
	// Without length prefixes these two lists would hash identically.
	require.NotEqual(t, Labels([]string{"ab", "c"}), Labels([]string{"a", "bc"}))
}

func TestLabels_Empty(t *testing.T) {
	require.Equal(t, Labels(nil), Labels([]string{}))
}
