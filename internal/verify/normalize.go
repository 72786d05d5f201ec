package verify

import "strings"

// Normalize canonicalizes text for substring matching: lower-case, every
// character outside [a-z0-9] becomes a separator, separator runs collapse to
// a single space, result is trimmed. Applied to both the needle and the
// haystack so extraction artifacts (punctuation, casing, line breaks) cannot
// cause false negatives.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
