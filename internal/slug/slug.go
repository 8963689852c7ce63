// Package slug builds the URL identifiers brand detail pages are served under.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonWord    = regexp.MustCompile(`[^\w-]+`)
)

// Slugify lowercases name, folds accented letters to their base form, turns
// whitespace runs into a single '-' and drops anything outside [A-Za-z0-9_-].
// Consecutive hyphens are kept so existing brand URLs stay stable.
func Slugify(name string) string {
	// transform.Chain is stateful; build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return clean(folded)
}

// Legacy is the slug older brand URLs were published under: accented letters are
// dropped instead of folded ("Café" gives "caf").
func Legacy(name string) string {
	return clean(name)
}

func clean(s string) string {
	s = strings.ToLower(s)
	s = whitespace.ReplaceAllString(s, "-")
	return nonWord.ReplaceAllString(s, "")
}

// Matches reports whether identifier addresses a brand with the given id or name,
// under either the current or the legacy slug.
func Matches(identifier, id, name string) bool {
	if identifier == "" {
		return false
	}
	return identifier == id || identifier == Slugify(name) || identifier == Legacy(name)
}
