// Package encode implements categorical feature encoders over string
// columns, following the fit/transform pattern: Fit derives the vocabulary
// (and any per-scheme state) from a training column, Transform applies the
// fitted state to a column sharing that vocabulary.
//
// Available schemes:
//
//   - ReplaceEncoder: user-supplied label-to-code mapping
//   - LabelEncoder: ordinal rank in [0, K-1]
//   - IndicatorEncoder: one-vs-rest 0/1 against a match predicate
//   - OneHotEncoder: K indicator columns, exactly one lit per row
//   - BinaryEncoder: rank packed into ceil(log2(K)) bit columns
//   - BackwardDifferenceEncoder: K-1 contrast columns comparing each level
//     to its predecessor
//   - RangeSplitter: "low-high" strings to numeric bounds or midpoints
//
// Encoders are immutable once fitted; Transform is read-only and safe to
// call from multiple goroutines. Fitted encoders persist through the
// artifact package: Snapshot captures the fitted state and the FromSnapshot
// constructors restore an encoder that transforms bit-identically.
//
// Missing values are an upstream concern. Fit rejects a configured sentinel
// (vocab.WithMissingSentinel) instead of treating it as a category.
package encode
