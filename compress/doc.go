// Package compress provides the compression codecs used for persisted
// encoder artifacts.
//
// Artifact payloads are JSON documents holding a fitted encoder's state
// (ordered vocabulary labels and, for replace encoders, the code mapping).
// Vocabularies with many levels compress well, so the artifact envelope can
// wrap its payload with any codec in this package:
//
//   - None: pass-through, for small vocabularies
//   - Zstd: best ratio, recommended default for large vocabularies
//   - S2: fastest, moderate ratio
//   - LZ4: fast with a reasonable ratio
//
// Codecs are stateless values; all of them are safe for concurrent use.
package compress
