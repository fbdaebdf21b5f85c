package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose into a base letter plus a combining mark.
var letterFolds = strings.NewReplacer(
	"ł", "l",
	"–", "-",
	"—", "-",
)

// normalizeKey folds case and diacritics and collapses whitespace, so that
// "Szkoła podstawowa 1–5" and "szkola  podstawowa 1-5" compare equal.
func normalizeKey(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = letterFolds.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
