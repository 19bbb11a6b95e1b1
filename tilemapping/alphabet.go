// Package tilemapping holds the letter-level primitives of the game: tiles,
// their point values, racks, and the letter bag.
package tilemapping

import (
	"unicode"
)

const (
	// BlankToken is the rack and bag representation of a blank tile.
	BlankToken = '?'
	// legacyBlankToken is how older stored bags and racks spell a blank.
	legacyBlankToken = ' '

	// NumLetters is the number of distinct rack letters: the blank plus a-z.
	NumLetters = 27
)

// letterScores holds the point value of every letter a-z.
var letterScores = [26]int{
	1, 3, 3, 2, 1, 4, 2, // a-g
	4, 1, 8, 5, 1, 3, 1, // h-n
	1, 3, 10, 1, 1, 1, 1, // o-u
	4, 4, 8, 4, 10, // v-z
}

// LetterScore returns the face value of a letter. Blanks and anything
// outside a-z are worth nothing.
func LetterScore(letter rune) int {
	letter = unicode.ToLower(letter)
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return letterScores[letter-'a']
}

// letterIndex maps a rack letter to its slot in a Rack. The blank goes at 0.
func letterIndex(letter rune) (int, bool) {
	if letter == BlankToken || letter == legacyBlankToken {
		return 0, true
	}
	letter = unicode.ToLower(letter)
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return int(letter-'a') + 1, true
}

func indexLetter(idx int) rune {
	if idx == 0 {
		return BlankToken
	}
	return rune('a' + idx - 1)
}

// NormalizeLetter returns the canonical rack representation of a letter.
func NormalizeLetter(letter rune) rune {
	idx, ok := letterIndex(letter)
	if !ok {
		return letter
	}
	return indexLetter(idx)
}
