package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a token into the canonical form used for model lookups:
// NFC composition plus script-aware lowercasing. Code-switched text mixes
// scripts, so ASCII lowercasing is not enough.
func Normalize(word string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(word))
}

// Tokenize splits text into words on whitespace, strips surrounding
// punctuation, and drops tokens that are punctuation only.
func Tokenize(text string) []string {
	var words []string
	for _, field := range strings.Fields(text) {
		word := strings.TrimFunc(field, isPunct)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}
