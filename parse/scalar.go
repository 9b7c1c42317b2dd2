package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// BooleanVocab configures the vocabularies recognized by BooleanWith.
type BooleanVocab struct {
	True  []string
	False []string
}

// DefaultBooleanVocab returns the vocabularies used by Boolean.
func DefaultBooleanVocab() BooleanVocab {
	return BooleanVocab{
		True:  []string{"yes", "true", "1", "correct", "affirmative"},
		False: []string{"no", "false", "0", "incorrect", "negative"},
	}
}

// Boolean interprets a response as a yes/no verdict using the default
// vocabularies. Returns nil when neither vocabulary matches; a missing
// verdict is a valid tri-state outcome, not a failure.
func Boolean(response string) *bool {
	return BooleanWith(response, DefaultBooleanVocab())
}

// BooleanWith is like Boolean with configurable vocabularies. Matching is a
// case-insensitive substring check; when both vocabularies match, the
// earliest occurrence wins, so "incorrect" resolves to false even though it
// contains "correct".
func BooleanWith(response string, vocab BooleanVocab) *bool {
	lower := strings.ToLower(response)

	trueIdx := earliestMatch(lower, vocab.True)
	falseIdx := earliestMatch(lower, vocab.False)

	switch {
	case trueIdx < 0 && falseIdx < 0:
		return nil
	case falseIdx < 0 || (trueIdx >= 0 && trueIdx < falseIdx):
		v := true
		return &v
	default:
		v := false
		return &v
	}
}

// earliestMatch returns the lowest index at which any word occurs, or -1.
func earliestMatch(s string, words []string) int {
	best := -1
	for _, w := range words {
		if w == "" {
			continue
		}
		if idx := strings.Index(s, w); idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best
}

var numberRe = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// Number returns the first signed or decimal number found in the response,
// or nil if none is present.
func Number(response string) *float64 {
	m := numberRe.FindString(response)
	if m == "" {
		return nil
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &n
}

// RatingValue is a score against a maximum, e.g. 8/10.
type RatingValue struct {
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

var (
	ratingRe  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:/|out of|of)\s*(\d+(?:\.\d+)?)`)
	percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
)

// Rating extracts a rating from a response. Recognizes "N/M", "N out of M",
// and "N of M" (case-insensitive), falling back to a bare percentage "N%"
// interpreted as a score out of 100. Returns nil when no rating is found.
func Rating(response string) *RatingValue {
	if m := ratingRe.FindStringSubmatch(response); m != nil {
		score, err1 := strconv.ParseFloat(m[1], 64)
		max, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return &RatingValue{Score: score, Max: max}
		}
	}

	if m := percentRe.FindStringSubmatch(response); m != nil {
		score, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return &RatingValue{Score: score, Max: 100}
		}
	}

	return nil
}

// MissingFields reports which of the required fields are absent or null in
// data. A cheap post-parse schema guard applied before trusting model
// output; shape beyond what was explicitly checked must not be assumed.
func MissingFields(data map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		v, ok := data[field]
		if !ok || v == nil {
			missing = append(missing, field)
		}
	}
	return missing
}
