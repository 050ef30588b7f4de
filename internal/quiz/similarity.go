package quiz

import (
	"strings"
	"unicode/utf8"
)

// Tier is the qualitative bucket a similarity score falls into.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierClose     Tier = "close"
	TierPoor      Tier = "poor"
)

// Tier thresholds. A score must be strictly greater than a threshold to
// reach the tier above it.
const (
	ExcellentThreshold = 0.8
	CloseThreshold     = 0.6
)

// Message returns the feedback line shown for the tier.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent! Your answer matches the verse very closely!"
	case TierClose:
		return "Close! You have the main idea, but some details are different."
	default:
		return "Keep practicing! The verse is quite different."
	}
}

// Normalize lower-cases s and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// Similarity scores candidate against reference in [0,1]. Both strings are
// normalized first; two empty strings are a vacuous exact match.
func Similarity(candidate, reference string) float64 {
	a, b := Normalize(candidate), Normalize(reference)

	longer, shorter := a, b
	if utf8.RuneCountInString(b) > utf8.RuneCountInString(a) {
		longer, shorter = b, a
	}

	l := utf8.RuneCountInString(longer)
	if l == 0 {
		return 1.0
	}
	return float64(l-EditDistance(longer, shorter)) / float64(l)
}

// Classify maps a similarity score onto its tier.
func Classify(score float64) Tier {
	switch {
	case score > ExcellentThreshold:
		return TierExcellent
	case score > CloseThreshold:
		return TierClose
	default:
		return TierPoor
	}
}
