package tilemapping

import (
	"encoding/json"
	"fmt"
	"unicode"
)

// A Tile is a letter sitting on the board or about to be placed there. A
// joker (blank) carries the letter it stands for, or no letter at all.
type Tile struct {
	Letter rune
	Joker  bool
}

// NewTile returns a regular lettered tile.
func NewTile(letter rune) Tile {
	return Tile{Letter: unicode.ToLower(letter)}
}

// NewJoker returns a blank tile designated as letter. letter may be 0.
func NewJoker(letter rune) Tile {
	return Tile{Letter: unicode.ToLower(letter), Joker: true}
}

// Score is the tile's point value. Jokers are always worth 0.
func (t Tile) Score() int {
	if t.Joker {
		return 0
	}
	return LetterScore(t.Letter)
}

// RackLetter is the rack letter consumed when this tile is played.
func (t Tile) RackLetter() rune {
	if t.Joker {
		return BlankToken
	}
	return unicode.ToLower(t.Letter)
}

// String shows jokers in upper case, the way the board display does.
func (t Tile) String() string {
	if t.Letter == 0 {
		return string(BlankToken)
	}
	if t.Joker {
		return string(unicode.ToUpper(t.Letter))
	}
	return string(t.Letter)
}

type tileJSON struct {
	Letter string `json:"letter"`
	Joker  bool   `json:"isJoker"`
}

// MarshalJSON stores the letter as a one-character string. A joker with no
// letter has an empty one.
func (t Tile) MarshalJSON() ([]byte, error) {
	tj := tileJSON{Joker: t.Joker}
	if t.Letter != 0 {
		tj.Letter = string(t.Letter)
	}
	return json.Marshal(tj)
}

func (t *Tile) UnmarshalJSON(data []byte) error {
	var tj tileJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}
	runes := []rune(tj.Letter)
	if len(runes) > 1 {
		return fmt.Errorf("%w: %q", ErrUnknownLetter, tj.Letter)
	}
	t.Joker = tj.Joker
	t.Letter = 0
	if len(runes) == 1 {
		t.Letter = unicode.ToLower(runes[0])
	}
	return nil
}
