package jobcoach

import (
	"regexp"
	"strings"
)

// TruncationMarker is appended to text cut at a length cap.
const TruncationMarker = "... [content truncated]"

var (
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	newlineRunRe = regexp.MustCompile(`\n{2,}`)
)

// NormalizeWhitespace collapses runs of spaces and tabs into a single space,
// collapses runs of two or more newlines into one, and trims the result.
// The operation is idempotent.
func NormalizeWhitespace(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = newlineRunRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// Truncate caps s at max runes, appending TruncationMarker when the cap is
// exceeded. It reports whether truncation occurred.
func Truncate(s string, max int) (string, bool) {
	if max <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return string(runes[:max]) + TruncationMarker, true
}
