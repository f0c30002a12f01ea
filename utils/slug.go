package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases, strips diacritics and non-alphanumerics, and joins
// words with single hyphens. Product slugs are derived from the name.
func Slugify(val string) string {
	if val == "" {
		return ""
	}

	// Đ carries no combining mark, so normalization alone won't fold it.
	val = strings.NewReplacer("đ", "d", "Đ", "D").Replace(val)

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, val)
	if err != nil {
		normalized = val
	}

	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(normalized)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
