package expand

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordSeparator splits an item path into label words.
const WordSeparator = "_"

// Label derives a display name from an item path by capitalizing each
// underscore-separated word and joining the words with sep.
// With an empty sep, iron_gear becomes "IronGear".
func Label(path, sep string) string {
	words := strings.Split(path, WordSeparator)
	capitalized := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		capitalized = append(capitalized, capitalize(w))
	}
	return strings.Join(capitalized, sep)
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}
