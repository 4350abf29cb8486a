package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestEngine_AppendReadRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0xdeadbeefcafe1234)
		buf = engine.AppendUint32(buf, 42)

		require.Equal(t, uint64(0xdeadbeefcafe1234), engine.Uint64(buf[:8]))
		require.Equal(t, uint32(42), engine.Uint32(buf[8:12]))
	}
}
