// Package infer fills in hierarchy fields that the sources leave implicit:
// department and composante from free text, mention from a formation name,
// year level from a role label. Classification is an ordered list of
// (predicate, result) rules evaluated first-match-wins, so adding a keyword
// never touches control flow.
package infer

import (
	"regexp"
	"strings"

	"github.com/uspn-tools/rostergen/internal/textutil"
)

type keywordRule struct {
	keyword string
	result  string
}

// departementRules map free-text keywords to department names. Earlier
// entries win when several keywords occur in the same text.
var departementRules = []keywordRule{
	{"droit", "Département Droit"},
	{"informatique", "Département Informatique"},
	{"mathématique", "Département Mathématiques"},
	{"physique", "Département Physique"},
	{"chimie", "Département Chimie"},
	{"communication", "Département Communication"},
	{"sociologie", "Département Sociologie"},
	{"science politique", "Département Science Politique"},
	{"création numérique", "Département Création Numérique"},
	{"sciences pour l’ingénieur", "Département Sciences pour l’ingénieur"},
	{"electronique", "Département Sciences pour l’ingénieur"},
	{"signal", "Département Sciences pour l’ingénieur"},
	{"réseaux", "Département Sciences pour l’ingénieur"},
	{"galilée", "Département Sup Galilée"},
	{"sup galilée", "Département Sup Galilée"},
}

type predicateRule struct {
	match  func(string) bool
	result string
}

var composanteRules = []predicateRule{
	{contains("galilée"), "Institut Galilée"},
	{anyOf("dsps", "droit", "science politique", "sociologie"),
		"Faculté DSPS (Droit, Sciences politiques et sociales)"},
	{allOf("iut", "bobigny"), "IUT de Bobigny"},
	{allOf("iut", "saint-denis"), "IUT de Saint-Denis"},
	{allOf("iut", "villetaneuse"), "IUT de Villetaneuse"},
	{anyOf("communication", "sciences de l’information"),
		"UFR des Sciences de l’Information et de la Communication"},
}

// Departement returns the department name suggested by the text, or "".
func Departement(text string) string {
	t := strings.ToLower(text)
	for _, r := range departementRules {
		if strings.Contains(t, r.keyword) {
			return r.result
		}
	}
	return ""
}

// Composante returns the top-level unit suggested by the text, or "".
func Composante(text string) string {
	t := strings.ToLower(text)
	for _, r := range composanteRules {
		if r.match(t) {
			return r.result
		}
	}
	return ""
}

var mentionRe = regexp.MustCompile(`(?i)mention\s+([^,]+)`)

// MentionFromFormation extracts the text following the word "mention" up to
// the next comma, e.g. "Licence mention Informatique, parcours X" ->
// "Informatique".
func MentionFromFormation(name string) string {
	m := mentionRe.FindStringSubmatch(textutil.CleanWhitespace(name))
	if m == nil {
		return ""
	}
	return textutil.CleanWhitespace(m[1])
}

var niveauLikeRe = regexp.MustCompile(`(1ère|2ème|3ème|annee|année|l1|l2|l3|m1|m2)`)

// IsNiveauLike reports whether the value names a year level rather than a
// track ("2ème année", "L3", "M1").
func IsNiveauLike(value string) bool {
	return niveauLikeRe.MatchString(strings.ToLower(value))
}

// NiveauFromRole resolves a role label to a year-level name. First-year
// labels disambiguate the N1/N2 sub-tracks when present.
func NiveauFromRole(role string) string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "1ère"), strings.Contains(r, "1ere"), strings.Contains(r, "l1"):
		if strings.Contains(r, "n1") {
			return "1ère année N1"
		}
		if strings.Contains(r, "n2") {
			return "1ère année N2"
		}
		return "1ère année"
	case strings.Contains(r, "2ème"), strings.Contains(r, "2eme"), strings.Contains(r, "l2"):
		return "2ème année"
	case strings.Contains(r, "3ème"), strings.Contains(r, "3eme"), strings.Contains(r, "l3"):
		return "3ème année"
	case strings.Contains(r, "m1"):
		return "M1"
	case strings.Contains(r, "m2"):
		return "M2"
	}
	return ""
}

func contains(kw string) func(string) bool {
	return func(t string) bool { return strings.Contains(t, kw) }
}

func anyOf(kws ...string) func(string) bool {
	return func(t string) bool {
		for _, kw := range kws {
			if strings.Contains(t, kw) {
				return true
			}
		}
		return false
	}
}

func allOf(kws ...string) func(string) bool {
	return func(t string) bool {
		for _, kw := range kws {
			if !strings.Contains(t, kw) {
				return false
			}
		}
		return true
	}
}
