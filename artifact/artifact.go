// Package artifact persists fitted encoders as self-describing byte blobs.
//
// An artifact wraps a JSON snapshot of an encoder's fitted state (scheme,
// feature name, ordered vocabulary labels, and for replace encoders the code
// mapping) in a small binary envelope:
//
//	offset  size  field
//	0       4     magic "CENC"
//	4       1     version (currently 1)
//	5       1     flags (bit 0: big-endian multi-byte fields)
//	6       1     scheme (format.SchemeType)
//	7       1     compression (format.CompressionType)
//	8       8     vocabulary fingerprint (xxHash64 over ordered labels)
//	16      8     payload checksum (xxHash64 over the stored payload)
//	24      4     payload length
//	28      n     payload (JSON, optionally compressed)
//
// The vocabulary fingerprint lets a consumer reject an artifact whose
// vocabulary drifted from the one it expects without parsing the payload;
// the checksum detects corruption of the payload itself.
//
// Decode verifies magic, version, checksum and fingerprint, and fails with
// the corresponding sentinel from the errs package. A decoded Snapshot is
// turned back into an encoder with the FromSnapshot constructors in the
// encode package; the restored encoder transforms bit-identically to the
// one that was saved.
package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/catenc/catenc/compress"
	"github.com/catenc/catenc/endian"
	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/format"
	"github.com/catenc/catenc/internal/hash"
	"github.com/catenc/catenc/internal/options"
)

const (
	magic      = "CENC"
	version    = 0x1
	headerSize = 28

	flagBigEndian = 0x1
)

// Snapshot is the serializable fitted state of an encoder.
//
// Labels hold the vocabulary in rank order for vocabulary-based schemes.
// Mapping is only set for the replace scheme; Lenient only for one-hot.
type Snapshot struct {
	Scheme  format.SchemeType  `json:"scheme"`
	Feature string             `json:"feature,omitempty"`
	Labels  []string           `json:"labels,omitempty"`
	Mapping map[string]float64 `json:"mapping,omitempty"`
	Lenient bool               `json:"lenient,omitempty"`
}

// Fingerprint returns the order-sensitive xxHash64 fingerprint of the
// snapshot's vocabulary labels.
func (s Snapshot) Fingerprint() uint64 {
	return hash.Labels(s.Labels)
}

type config struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures artifact encoding.
type Option = options.Option[*config]

// WithCompression selects the payload compression codec.
// The default is format.CompressionNone.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(c *config) error {
		switch compressionType {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compressionType
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
		}
	})
}

// WithBigEndian stores multi-byte envelope fields in big-endian order.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithLittleEndian stores multi-byte envelope fields in little-endian order.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = false
	})
}

// Encode serializes a snapshot into an artifact blob.
//
// Returns:
//   - []byte: The encoded artifact
//   - error: errs.ErrInvalidScheme for an unknown scheme, option errors, or
//     payload serialization/compression errors
func Encode(s Snapshot, opts ...Option) ([]byte, error) {
	cfg := config{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if s.Scheme.String() == "Unknown" {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidScheme, uint8(s.Scheme))
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	codec, err := compress.CreateCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err = codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	var flags byte
	engine := endian.GetLittleEndianEngine()
	if cfg.bigEndian {
		flags |= flagBigEndian
		engine = endian.GetBigEndianEngine()
	}

	buf := make([]byte, 0, headerSize+len(payload))
	buf = append(buf, magic...)
	buf = append(buf, version, flags, byte(s.Scheme), byte(cfg.compression))
	buf = engine.AppendUint64(buf, s.Fingerprint())
	buf = engine.AppendUint64(buf, hash.Bytes(payload))
	buf = engine.AppendUint32(buf, uint32(len(payload))) //nolint:gosec
	buf = append(buf, payload...)

	return buf, nil
}

// Decode parses and verifies an artifact blob.
//
// Returns:
//   - Snapshot: The decoded fitted state
//   - error: errs.ErrTruncatedArtifact, ErrInvalidMagicNumber,
//     ErrUnsupportedVersion, ErrInvalidScheme, ErrInvalidCompression,
//     ErrChecksumMismatch or ErrVocabularyMismatch
func Decode(data []byte) (Snapshot, error) {
	if len(data) < headerSize {
		return Snapshot{}, fmt.Errorf("%w: %d bytes, need at least %d", errs.ErrTruncatedArtifact, len(data), headerSize)
	}

	if string(data[:4]) != magic {
		return Snapshot{}, errs.ErrInvalidMagicNumber
	}
	if data[4] != version {
		return Snapshot{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	engine := endian.GetLittleEndianEngine()
	if data[5]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	scheme := format.SchemeType(data[6])
	if scheme.String() == "Unknown" {
		return Snapshot{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidScheme, data[6])
	}
	compression := format.CompressionType(data[7])

	fingerprint := engine.Uint64(data[8:16])
	checksum := engine.Uint64(data[16:24])
	payloadLen := int(engine.Uint32(data[24:28]))

	if len(data) != headerSize+payloadLen {
		return Snapshot{}, fmt.Errorf("%w: payload claims %d bytes, have %d",
			errs.ErrTruncatedArtifact, payloadLen, len(data)-headerSize)
	}
	payload := data[headerSize:]

	if hash.Bytes(payload) != checksum {
		return Snapshot{}, errs.ErrChecksumMismatch
	}

	codec, err := compress.CreateCodec(compression)
	if err != nil {
		return Snapshot{}, err
	}
	payload, err = codec.Decompress(payload)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to decompress payload: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if s.Scheme != scheme {
		return Snapshot{}, fmt.Errorf("%w: envelope says %s, payload says %s",
			errs.ErrInvalidScheme, scheme, s.Scheme)
	}
	if s.Fingerprint() != fingerprint {
		return Snapshot{}, errs.ErrVocabularyMismatch
	}

	return s, nil
}
