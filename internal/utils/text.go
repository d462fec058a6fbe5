package utils

import "strings"

// Tokenize lowercases text and splits it into bare word tokens. Apostrophes
// are removed (so "isn't" matches a lexicon entry "isnt"); any other
// non-letter, non-digit rune is a separator.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = strings.NewReplacer("'", "", "’", "").Replace(text)

	return strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}
