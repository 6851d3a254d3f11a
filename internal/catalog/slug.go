package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives the image file stem for a product name: accents stripped,
// lower-cased, runs of non-alphanumerics collapsed to single hyphens.
func Slug(name string) string {
	plain, _, err := transform.String(deaccent, name)
	if err != nil {
		plain = name
	}
	plain = strings.ToLower(plain)

	var b strings.Builder
	b.Grow(len(plain))
	hyphen := false
	for _, r := range plain {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		} else {
			hyphen = true
		}
	}
	return b.String()
}

// ImagePath resolves the catalog image path for a product name.
func ImagePath(name string) string {
	return "/images/" + Slug(name) + ".jpg"
}
