// Package endian provides byte-order utilities for the artifact envelope.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, so envelope fields
// can be both appended during encoding and read back during decoding through
// one value. binary.LittleEndian and binary.BigEndian satisfy the interface
// directly.
//
// Artifacts default to little-endian; big-endian is available for
// interoperability with consumers that expect network byte order. The
// engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
