package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe identifier from a human-readable name:
// lowercase, NFD decomposition with combining marks stripped, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens trimmed. The algorithm is deterministic and idempotent;
// persisted slugs depend on it staying exactly this.
func Slugify(name string) string {
	lowered := strings.ToLower(name)

	// NFD splits accented letters into base letter + combining mark
	decomposed := norm.NFD.String(lowered)

	var b strings.Builder
	b.Grow(len(decomposed))

	lastHyphen := false
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			// combining diacritical mark
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
