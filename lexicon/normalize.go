package lexicon

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser is not safe for concurrent use, so each call gets its own.
func normalize(word string) string {
	return cases.Lower(language.Und).String(word)
}
