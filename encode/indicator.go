package encode

import "strings"

// Matcher decides whether a label counts as a hit for indicator encoding.
type Matcher func(label string) bool

// MatchLabel matches exactly the target label.
func MatchLabel(target string) Matcher {
	return func(label string) bool {
		return label == target
	}
}

// MatchContains matches labels containing the given substring.
func MatchContains(substr string) Matcher {
	return func(label string) bool {
		return strings.Contains(label, substr)
	}
}

// IndicatorEncoder emits 1 for rows whose label satisfies the match
// predicate and 0 otherwise: a degenerate one-vs-rest encoding for when only
// one category matters. It needs no vocabulary and no fit step.
type IndicatorEncoder struct {
	match Matcher
}

// NewIndicatorEncoder creates an indicator encoder over the given matcher.
func NewIndicatorEncoder(m Matcher) *IndicatorEncoder {
	return &IndicatorEncoder{match: m}
}

// Transform emits one 0/1 value per input row.
func (e *IndicatorEncoder) Transform(column []string) []int {
	out := make([]int, len(column))
	for i, label := range column {
		if e.match(label) {
			out[i] = 1
		}
	}

	return out
}
