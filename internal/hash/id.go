package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given byte slice.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Labels computes the xxHash64 fingerprint of an ordered label list.
//
// Each label is length-prefixed before hashing so that label boundaries are
// unambiguous: ["ab", "c"] and ["a", "bc"] produce different fingerprints.
// The fingerprint is order-sensitive, which makes it suitable for detecting
// vocabulary drift between a fitted encoder and a persisted artifact.
func Labels(labels []string) uint64 {
	digest := xxhash.New()

	var prefix [4]byte
	for _, label := range labels {
		binary.LittleEndian.PutUint32(prefix[:], uint32(len(label))) //nolint:gosec
		_, _ = digest.Write(prefix[:])
		_, _ = digest.WriteString(label)
	}

	return digest.Sum64()
}
