package domain

import (
	"strings"
	"unicode"
)

// Slugify normalizes a tag for case-insensitive comparison: lowercased,
// runs of whitespace and punctuation collapsed into single hyphens.
func Slugify(tag string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens

	for _, r := range strings.ToLower(strings.TrimSpace(tag)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
