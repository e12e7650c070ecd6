package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.French)

// SplitFullName splits a free-form full name into (firstName, lastName).
//
// Tokens written entirely in upper case are the last name wherever they appear
// ("DUPONT Jean" and "Jean DUPONT" both yield Jean / DUPONT). Without any
// upper-case token the first token is the first name and the remainder the
// last name. A single token serves as both.
func SplitFullName(full string) (first, last string) {
	full = CleanWhitespace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.Fields(full)
	if len(parts) == 1 {
		return titleCaser.String(parts[0]), strings.ToUpper(parts[0])
	}

	var upper, rest []string
	for _, p := range parts {
		if isUpperToken(p) {
			upper = append(upper, p)
		} else {
			rest = append(rest, p)
		}
	}
	if len(upper) > 0 {
		return titleCaser.String(strings.Join(rest, " ")), strings.Join(upper, " ")
	}
	return titleCaser.String(parts[0]), strings.ToUpper(strings.Join(parts[1:], " "))
}

// isUpperToken reports whether the token carries at least one cased rune and
// no lower-case rune, mirroring how names like "DUPONT" are written in the
// source files.
func isUpperToken(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
