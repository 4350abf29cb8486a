// Package vocab extracts the vocabulary of a categorical feature column: the
// distinct labels in a deterministic order, with zero-based rank lookup.
//
// The canonical order is lexicographic on the label text. For ordinal
// features the caller supplies the order explicitly with WithOrder, since
// rank carries meaning for schemes such as backward-difference contrast
// coding.
//
// A Vocabulary is immutable once built and safe for concurrent use.
package vocab

import (
	"fmt"
	"sort"

	"github.com/catenc/catenc/errs"
	"github.com/catenc/catenc/internal/hash"
	"github.com/catenc/catenc/internal/options"
)

// Vocabulary holds the distinct labels of one feature column and their
// zero-based ranks. Rank is a function of the vocabulary alone, never of row
// position.
type Vocabulary struct {
	labels []string
	ranks  map[string]int
}

type config struct {
	order       []string
	sentinel    string
	hasSentinel bool
}

// Option configures vocabulary extraction.
type Option = options.Option[*config]

// WithOrder supplies an explicit ordinal ordering for the vocabulary.
//
// The ordering must list every distinct observed label exactly once and must
// not name labels that were never observed. Rank follows position in the
// ordering instead of lexicographic order.
func WithOrder(order []string) Option {
	return options.NoError(func(c *config) {
		c.order = order
	})
}

// WithMissingSentinel designates a missing-value sentinel.
//
// New fails with errs.ErrMissingValue if the sentinel appears in the input
// column. Missing values must be imputed before encoding; the encoder never
// treats a missing entry as its own category.
func WithMissingSentinel(sentinel string) Option {
	return options.NoError(func(c *config) {
		c.sentinel = sentinel
		c.hasSentinel = true
	})
}

// New builds a vocabulary from a raw label column.
//
// Duplicates collapse to a single entry. The input is not retained.
//
// Returns:
//   - *Vocabulary: Distinct labels with rank lookup
//   - error: errs.ErrEmptyVocabulary for a zero-row column,
//     errs.ErrMissingValue if the configured sentinel is present, or an
//     ordering validation error
func New(column []string, opts ...Option) (*Vocabulary, error) {
	var cfg config
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(column) == 0 {
		return nil, errs.ErrEmptyVocabulary
	}

	seen := make(map[string]struct{}, len(column))
	for i, label := range column {
		if cfg.hasSentinel && label == cfg.sentinel {
			return nil, fmt.Errorf("%w: row %d", errs.ErrMissingValue, i)
		}
		seen[label] = struct{}{}
	}

	var labels []string
	if cfg.order != nil {
		ordered, err := applyOrder(cfg.order, seen)
		if err != nil {
			return nil, err
		}
		labels = ordered
	} else {
		labels = make([]string, 0, len(seen))
		for label := range seen {
			labels = append(labels, label)
		}
		sort.Strings(labels)
	}

	return fromOrdered(labels), nil
}

// FromLabels rebuilds a vocabulary from an already-ordered label list, as
// stored in a persisted artifact. The list must be non-empty and free of
// duplicates; rank follows list position.
func FromLabels(labels []string) (*Vocabulary, error) {
	if len(labels) == 0 {
		return nil, errs.ErrEmptyVocabulary
	}

	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateOrderLabel, label)
		}
		seen[label] = struct{}{}
	}

	return fromOrdered(append([]string(nil), labels...)), nil
}

// applyOrder validates an explicit ordering against the observed label set.
func applyOrder(order []string, seen map[string]struct{}) ([]string, error) {
	ordered := make([]string, 0, len(order))
	used := make(map[string]struct{}, len(order))

	for _, label := range order {
		if _, dup := used[label]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateOrderLabel, label)
		}
		used[label] = struct{}{}

		if _, ok := seen[label]; !ok {
			return nil, fmt.Errorf("%w: %q was never observed", errs.ErrUnorderedLabel, label)
		}
		ordered = append(ordered, label)
	}

	for label := range seen {
		if _, ok := used[label]; !ok {
			return nil, fmt.Errorf("%w: observed %q missing from ordering", errs.ErrUnorderedLabel, label)
		}
	}

	return ordered, nil
}

func fromOrdered(labels []string) *Vocabulary {
	ranks := make(map[string]int, len(labels))
	for i, label := range labels {
		ranks[label] = i
	}

	return &Vocabulary{labels: labels, ranks: ranks}
}

// Len returns the vocabulary size K.
func (v *Vocabulary) Len() int {
	return len(v.labels)
}

// Labels returns a copy of the labels in rank order.
func (v *Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)

	return out
}

// Rank returns the zero-based rank of label and whether it is part of the
// vocabulary.
func (v *Vocabulary) Rank(label string) (int, bool) {
	rank, ok := v.ranks[label]

	return rank, ok
}

// Contains reports whether label is part of the vocabulary.
func (v *Vocabulary) Contains(label string) bool {
	_, ok := v.ranks[label]

	return ok
}

// Label returns the label at the given rank.
func (v *Vocabulary) Label(rank int) (string, bool) {
	if rank < 0 || rank >= len(v.labels) {
		return "", false
	}

	return v.labels[rank], true
}

// Fingerprint returns the order-sensitive xxHash64 fingerprint of the
// vocabulary. Two vocabularies with the same labels in the same order share
// a fingerprint; any difference in membership or order changes it.
func (v *Vocabulary) Fingerprint() uint64 {
	return hash.Labels(v.labels)
}
