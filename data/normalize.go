package data

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// timeNow is swapped out in tests that need a fixed current date.
var timeNow = time.Now

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	whitespace = regexp.MustCompile(`\s+`)
)

// normalizeSearch folds text for searching: diacritics removed, lowercased
// and trimmed, so "Árbol" and "arbol" compare equal.
func normalizeSearch(text string) string {
	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// normalizeName folds a person's name for equality checks: trimmed,
// lowercased, with runs of whitespace collapsed to a single space.
func normalizeName(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(strings.TrimSpace(name), " "))
}

// daysBetween returns the number of whole days from one calendar date to
// another, ignoring the time-of-day portion of both values.
func daysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
