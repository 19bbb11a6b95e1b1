package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/domino14/webwords/tilemapping"
)

// ToDisplayText renders the board with coordinates along the edges. Empty
// premium squares show their marker; jokers show in upper case.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	row := "   "
	for i := 0; i < Width; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str.WriteString(row + "\n")
	str.WriteString("   " + strings.Repeat("-", Width*2) + "\n")
	for y := 0; y < Height; y++ {
		row := fmt.Sprintf("%2d|", y+1)
		for x := 0; x < Width; x++ {
			if t, ok := b.Tile(x, y); ok {
				row = row + t.String() + " "
			} else {
				row = row + string(b.Bonus(x, y)) + " "
			}
		}
		row = row + "|"
		str.WriteString(row + "\n")
	}
	str.WriteString("   " + strings.Repeat("-", Width*2) + "\n")
	return "\n" + str.String()
}

func (b *Board) String() string {
	return b.ToDisplayText()
}

// SetRow commits the letters to row y, starting at column 0. Spaces and
// dots are skipped; upper-case letters become jokers. It returns the tiles
// that were placed.
func (b *Board) SetRow(y int, letters string) []tilemapping.Tile {
	placed := []tilemapping.Tile{}
	x := -1
	for _, r := range letters {
		x++
		if r == ' ' || r == '.' {
			continue
		}
		tile := tilemapping.NewTile(r)
		if unicode.IsUpper(r) {
			tile = tilemapping.NewJoker(r)
		}
		if err := b.PlaceTile(tile, x, y); err != nil {
			log.Error().Err(err).Msg("set-row")
			continue
		}
		placed = append(placed, tile)
	}
	return placed
}

// Copy returns a board with the same tiles.
func (b *Board) Copy() *Board {
	n := NewBoard()
	for c, t := range b.tiles {
		n.tiles[c] = t
	}
	n.hasTiles = b.hasTiles
	return n
}
