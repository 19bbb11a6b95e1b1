package move

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/domino14/webwords/tilemapping"
)

// A Word is a contiguous run of tiles on the board, in reading order (left
// to right, or top to bottom). Placements may be new or already committed.
type Word struct {
	Placements []Placement
}

// Add appends a tile to the end of the word.
func (w *Word) Add(tile tilemapping.Tile, x, y int) {
	w.Placements = append(w.Placements, Placement{Tile: tile, X: x, Y: y})
}

func (w *Word) Len() int {
	return len(w.Placements)
}

// String renders the word in lower case, ready for a dictionary lookup.
// A joker that was never given a letter contributes nothing.
func (w *Word) String() string {
	var sb strings.Builder
	for _, p := range w.Placements {
		if p.Tile.Letter == 0 {
			continue
		}
		sb.WriteRune(unicode.ToLower(p.Tile.Letter))
	}
	return sb.String()
}

// WordStrings renders every word.
func WordStrings(words []*Word) []string {
	return lo.Map(words, func(w *Word, _ int) string {
		return w.String()
	})
}
