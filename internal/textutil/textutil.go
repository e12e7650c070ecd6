// Package textutil provides the text normalization primitives used across the
// roster pipeline: whitespace collapsing, accent-free slugification, section
// title cleanup and full-name splitting.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	multiSpace   = regexp.MustCompile(`\s+`)
	nonSlug      = regexp.MustCompile(`[^a-z0-9]+`)
	decorativeRe = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}]`)
)

// diacritics removes combining marks after NFD decomposition.
var diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CleanWhitespace collapses runs of whitespace to single spaces and trims.
func CleanWhitespace(s string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// StripDiacritics decomposes the string and drops combining marks, turning
// "Création" into "Creation".
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacritics, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify produces an ascii-only slug: accents stripped, lowercased, runs of
// anything outside [a-z0-9] replaced by a single dash. An empty result falls
// back to "role" so minted role ids are never blank.
func Slugify(s string) string {
	t := strings.ToLower(StripDiacritics(s))
	t = nonSlug.ReplaceAllString(t, "-")
	t = strings.Trim(t, "-")
	if t == "" {
		return "role"
	}
	return t
}

// CleanTitle strips decorative symbols from a section title and trims leading
// and trailing spaces and dash characters.
func CleanTitle(s string) string {
	return strings.Trim(decorativeRe.ReplaceAllString(s, ""), " -–—")
}
