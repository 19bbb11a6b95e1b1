package tilemapping

import (
	"strings"
)

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	Name         string
	distribution [NumLetters]int
	numLetters   int
}

type frequency struct {
	count   int
	letters string
}

// englishFrequencies is the standard 100-tile English set. The blank is
// spelled with BlankToken.
var englishFrequencies = []frequency{
	{1, "kjxqz"},
	{2, "?bcmpfhvwy"},
	{3, "g"},
	{4, "lsud"},
	{6, "nrt"},
	{8, "o"},
	{9, "ai"},
	{12, "e"},
}

func newLetterDistribution(name string, freqs []frequency) *LetterDistribution {
	ld := &LetterDistribution{Name: name}
	for _, f := range freqs {
		for _, letter := range f.letters {
			idx, ok := letterIndex(letter)
			if !ok {
				panic("bad letter in distribution: " + string(letter))
			}
			ld.distribution[idx] += f.count
			ld.numLetters += f.count
		}
	}
	return ld
}

// EnglishLetterDistribution returns the English letter distribution.
func EnglishLetterDistribution() *LetterDistribution {
	return newLetterDistribution("english", englishFrequencies)
}

// NumTiles is the total number of tiles, blanks included.
func (ld *LetterDistribution) NumTiles() int {
	return ld.numLetters
}

// CountOf returns how many copies of letter the distribution holds.
func (ld *LetterDistribution) CountOf(letter rune) int {
	idx, ok := letterIndex(letter)
	if !ok {
		return 0
	}
	return ld.distribution[idx]
}

// Letters returns every tile of the distribution as a string, grouped by
// letter.
func (ld *LetterDistribution) Letters() string {
	var sb strings.Builder
	for i := 0; i < NumLetters; i++ {
		sb.WriteString(strings.Repeat(string(indexLetter(i)), ld.distribution[i]))
	}
	return sb.String()
}

// MakeBag returns a full bag of tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	b, err := NewBag(ld.Letters())
	if err != nil {
		panic(err)
	}
	return b
}
