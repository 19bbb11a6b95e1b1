package tilemapping

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Rack is a multiset of a player's letters.
type Rack struct {
	// letArr counts letters by index; the blank goes at 0.
	letArr     [NumLetters]int
	numLetters int
}

// NewRack creates an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// RackFromString creates a Rack from a string of letters. Letters that
// cannot live on a rack are logged and skipped.
func RackFromString(rack string) *Rack {
	r := &Rack{}
	r.setFromStr(rack)
	return r
}

func (r *Rack) setFromStr(rack string) {
	r.Clear()
	for _, letter := range rack {
		if err := r.Add(letter); err != nil {
			log.Error().AnErr("err", err).Str("rack", rack).Msg("unable to convert rack")
		}
	}
}

// String returns the letters on the rack, blanks first and then a-z.
func (r *Rack) String() string {
	var sb strings.Builder
	for i := 0; i < NumLetters; i++ {
		for j := 0; j < r.letArr[i]; j++ {
			sb.WriteRune(indexLetter(i))
		}
	}
	return sb.String()
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := *r
	return &n
}

func (r *Rack) Clear() {
	r.letArr = [NumLetters]int{}
	r.numLetters = 0
}

// Add puts a single letter on the rack.
func (r *Rack) Add(letter rune) error {
	idx, ok := letterIndex(letter)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLetter, letter)
	}
	r.letArr[idx]++
	r.numLetters++
	return nil
}

func (r *Rack) Has(letter rune) bool {
	return r.CountOf(letter) > 0
}

func (r *Rack) CountOf(letter rune) int {
	idx, ok := letterIndex(letter)
	if !ok {
		return 0
	}
	return r.letArr[idx]
}

// Contains reports whether every letter in letters can be taken from the
// rack, counting repeats.
func (r *Rack) Contains(letters []rune) bool {
	_, missing := r.firstMissing(letters)
	return !missing
}

func (r *Rack) firstMissing(letters []rune) (rune, bool) {
	var need [NumLetters]int
	for _, letter := range letters {
		idx, ok := letterIndex(letter)
		if !ok {
			return letter, true
		}
		need[idx]++
		if need[idx] > r.letArr[idx] {
			return letter, true
		}
	}
	return 0, false
}

// Take removes one occurrence of each letter. It stops at the first letter
// the rack does not hold and returns a *TileNotOwnedError; letters taken
// before that point stay taken. Use Contains first to avoid partial removal.
func (r *Rack) Take(letters []rune) error {
	for _, letter := range letters {
		idx, ok := letterIndex(letter)
		if !ok || r.letArr[idx] == 0 {
			return &TileNotOwnedError{Letter: letter}
		}
		r.letArr[idx]--
		r.numLetters--
	}
	return nil
}

// TilesOn returns the letters on the rack in String order.
func (r *Rack) TilesOn() []rune {
	return []rune(r.String())
}

// ScoreOn returns the total face value of the tiles on this rack.
func (r *Rack) ScoreOn() int {
	score := 0
	for i := 1; i < NumLetters; i++ {
		if r.letArr[i] > 0 {
			score += LetterScore(indexLetter(i)) * r.letArr[i]
		}
	}
	return score
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

func (r *Rack) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rack) UnmarshalText(text []byte) error {
	r.Clear()
	for _, letter := range string(text) {
		if err := r.Add(letter); err != nil {
			return err
		}
	}
	return nil
}
