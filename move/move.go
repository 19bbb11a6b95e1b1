// Package move describes tile placements proposed in a turn and the words
// they form on the board.
package move

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/webwords/tilemapping"
)

// BingoTiles is the number of tiles a move must place to earn the bingo
// bonus.
const BingoTiles = 7

// A Placement is a tile bound to a board coordinate.
type Placement struct {
	Tile tilemapping.Tile `json:"tile"`
	X    int              `json:"x"`
	Y    int              `json:"y"`
}

func (p Placement) String() string {
	return fmt.Sprintf("%v@%d:%d", p.Tile, p.X, p.Y)
}

// Move is the set of placements a player proposes in a single turn. It
// does no validation of its own; that is the board's job.
type Move struct {
	Placements []Placement `json:"placements"`
}

// NewMove creates an empty move.
func NewMove() *Move {
	return &Move{}
}

// Add appends a placement to the move.
func (m *Move) Add(tile tilemapping.Tile, x, y int) {
	m.Placements = append(m.Placements, Placement{Tile: tile, X: x, Y: y})
}

// Tile returns the tile of the first placement at x, y.
func (m *Move) Tile(x, y int) (tilemapping.Tile, bool) {
	for _, p := range m.Placements {
		if p.X == x && p.Y == y {
			return p.Tile, true
		}
	}
	return tilemapping.Tile{}, false
}

// NumTiles returns the number of tiles placed by this move.
func (m *Move) NumTiles() int {
	return len(m.Placements)
}

// IsBingo reports whether the move places exactly BingoTiles tiles.
func (m *Move) IsBingo() bool {
	return len(m.Placements) == BingoTiles
}

// RackLetters returns the rack letters this move uses up. Every joker
// consumes a blank, whatever letter it was given.
func (m *Move) RackLetters() []rune {
	return lo.Map(m.Placements, func(p Placement, _ int) rune {
		return p.Tile.RackLetter()
	})
}

func (m *Move) String() string {
	return "<" + strings.Join(lo.Map(m.Placements, func(p Placement, _ int) string {
		return p.String()
	}), " ") + ">"
}
