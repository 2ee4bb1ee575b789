package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and converts s to Unicode NFC so
// that visually identical input (e.g. decomposed Hangul from some mobile
// keyboards) is stored identically.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeCode upper-cases an identifier such as a category or site code.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TitleCase title-cases a display name.
func TitleCase(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(NormalizeText(s))
}
