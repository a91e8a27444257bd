package matcher

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// tokenize lowercases the input, splits it on anything that is not a
// letter or digit, drops stopwords and stems the remainder. Stemming
// failures keep the raw token so an odd word still participates in
// matching.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		stemmed, err := snowball.Stem(f, "english", false)
		if err != nil || stemmed == "" {
			stemmed = f
		}
		tokens = append(tokens, stemmed)
	}
	return tokens
}
