package jobcoach

import (
	"strings"
	"unicode"
)

// Slugify creates a filesystem- and URL-safe slug from a title.
// Converts to lowercase, replaces space runs with single hyphens, and drops
// everything that is not a letter or digit.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' || r == '/' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
