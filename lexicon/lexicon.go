// Package lexicon answers whether strings are playable words.
package lexicon

// Lexicon is a read-only word list. Words are looked up in lower case.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll accepts every word of two or more letters. It is meant for
// tests and sandbox games that run without a word list.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return len([]rune(word)) >= MinWordLength
}
