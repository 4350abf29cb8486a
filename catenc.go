// Package catenc encodes categorical feature columns into numeric
// representations for statistical modeling: label codes, one-hot indicator
// vectors, bit-packed binary codes, backward-difference contrasts, custom
// replace mappings, one-vs-rest indicators, and numeric range splitting.
//
// Every encoder follows the same two-phase contract: Fit derives the
// vocabulary (the distinct labels in a deterministic order) from a training
// column, Transform applies the fitted state to any column sharing that
// vocabulary. Encoders are immutable after Fit and safe for concurrent
// transforms; a label outside the fitted vocabulary fails with a sentinel
// error instead of being silently coerced.
//
// # Basic Usage
//
// Label-encoding a carrier column:
//
//	import "github.com/catenc/catenc"
//
//	enc, err := catenc.FitLabel(carriers)
//	if err != nil {
//	    return err
//	}
//	codes, err := enc.Transform(carriers) // AA=0, AS=1, B6=2, ...
//
// One-hot expansion with named output columns:
//
//	enc, err := catenc.FitOneHot("carrier", carriers)
//	rows, err := enc.Transform(carriers)
//	names := enc.ColumnNames() // carrier_AA, carrier_AS, carrier_B6, ...
//
// Persisting a fitted encoder and restoring it elsewhere:
//
//	snap, _ := enc.Snapshot()
//	blob, _ := catenc.Marshal(snap, artifact.WithCompression(format.CompressionZstd))
//
//	decoded, _ := catenc.Unmarshal(blob)
//	restored, _ := encode.OneHotEncoderFromSnapshot(decoded)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encode and
// artifact packages, simplifying the most common use cases. For ordinal
// orderings, missing-value sentinels, lenient one-hot mode and custom range
// separators, use the encode and vocab packages directly. The frame package
// holds a minimal row-indexed table for merging encoder output back into a
// dataset by row position.
package catenc

import (
	"github.com/catenc/catenc/artifact"
	"github.com/catenc/catenc/encode"
	"github.com/catenc/catenc/internal/hash"
	"github.com/catenc/catenc/vocab"
)

// FitLabel fits a label encoder on column: each distinct label gets its
// zero-based rank in canonical (lexicographic) order.
func FitLabel(column []string, opts ...vocab.Option) (*encode.LabelEncoder, error) {
	enc := encode.NewLabelEncoder()
	if err := enc.Fit(column, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// FitOneHot fits a one-hot encoder on column. Output columns are named
// "<feature>_<label>". Strict by default; pass encode.WithLenient() to emit
// all-zero rows for unseen labels instead of failing.
func FitOneHot(feature string, column []string, opts ...encode.OneHotOption) (*encode.OneHotEncoder, error) {
	enc, err := encode.NewOneHotEncoder(feature, opts...)
	if err != nil {
		return nil, err
	}
	if err := enc.Fit(column); err != nil {
		return nil, err
	}

	return enc, nil
}

// FitBinary fits a bit-packed binary encoder on column, producing
// ceil(log2(K)) bit columns named "<feature>_b<i>", most-significant bit
// first.
func FitBinary(feature string, column []string) (*encode.BinaryEncoder, error) {
	enc := encode.NewBinaryEncoder(feature)
	if err := enc.Fit(column); err != nil {
		return nil, err
	}

	return enc, nil
}

// FitBackwardDifference fits a backward-difference contrast encoder on
// column. The order argument supplies the ordinal level ordering the
// contrasts are computed over; pass nil to fall back to canonical
// lexicographic order, which only makes sense for genuinely ordinal label
// text.
func FitBackwardDifference(feature string, order []string, column []string) (*encode.BackwardDifferenceEncoder, error) {
	enc := encode.NewBackwardDifferenceEncoder(feature)

	var opts []vocab.Option
	if order != nil {
		opts = append(opts, vocab.WithOrder(order))
	}
	if err := enc.Fit(column, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Marshal serializes a fitted-encoder snapshot into an artifact blob.
func Marshal(s artifact.Snapshot, opts ...artifact.Option) ([]byte, error) {
	return artifact.Encode(s, opts...)
}

// Unmarshal parses and verifies an artifact blob.
func Unmarshal(data []byte) (artifact.Snapshot, error) {
	return artifact.Decode(data)
}

// VocabularyID computes the order-sensitive xxHash64 fingerprint of an
// ordered label list.
//
// The fingerprint identifies a fitted vocabulary across processes: an
// artifact produced from the same labels in the same order carries the same
// fingerprint, so a consumer can reject stale or mismatched artifacts
// before decoding the payload.
func VocabularyID(labels []string) uint64 {
	return hash.Labels(labels)
}
