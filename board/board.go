// Package board models the playing surface: committed tiles, premium
// squares, placement legality, word discovery, and scoring.
package board

import (
	"sort"

	"github.com/domino14/webwords/move"
	"github.com/domino14/webwords/tilemapping"
)

const (
	Width  = 15
	Height = 15
)

// Coord is a board position. X is the column and Y the row, both from 0.
type Coord struct {
	X int
	Y int
}

// Board is a sparse grid of committed tiles. It is not the system of
// record; a game rebuilds one from its move history whenever it needs one.
type Board struct {
	tiles    map[Coord]tilemapping.Tile
	hasTiles bool // has at least one tile been placed?
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{tiles: make(map[Coord]tilemapping.Tile)}
}

// Dim returns the board's width and height.
func (b *Board) Dim() (int, int) {
	return Width, Height
}

func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}

// PlaceTile commits a tile to the board.
func (b *Board) PlaceTile(tile tilemapping.Tile, x, y int) error {
	if !InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y}
	}
	b.tiles[Coord{x, y}] = tile
	b.hasTiles = true
	return nil
}

// Tile returns the tile at x, y. Out-of-bounds squares are simply empty.
func (b *Board) Tile(x, y int) (tilemapping.Tile, bool) {
	t, ok := b.tiles[Coord{x, y}]
	return t, ok
}

func (b *Board) occupied(x, y int) bool {
	_, ok := b.tiles[Coord{x, y}]
	return ok
}

// HasTiles returns whether any tile has been committed.
func (b *Board) HasTiles() bool {
	return b.hasTiles
}

// NumTiles returns the number of committed tiles.
func (b *Board) NumTiles() int {
	return len(b.tiles)
}

// Bonus returns the premium square at x, y, or NoBonus.
func (b *Board) Bonus(x, y int) BonusSquare {
	if bonus, ok := bonusIndex[Coord{x, y}]; ok {
		return bonus
	}
	return NoBonus
}

// BonusSquares lists every premium square, the start square included.
func (b *Board) BonusSquares() []BonusTile {
	return append([]BonusTile(nil), bonusTiles...)
}

type fixedAxis uint8

const (
	noAxis fixedAxis = iota
	// all placements share a column; the word runs down
	xAxis
	// all placements share a row; the word runs across
	yAxis
)

// PlacementsValid reports whether the move may legally be placed on this
// board. It does not modify the move or the board.
func (b *Board) PlacementsValid(m *move.Move) bool {
	// Must have placed a tile
	if m == nil || len(m.Placements) == 0 {
		return false
	}

	// Sort a copy of the placements, starting with the left-topmost. Ties on
	// x+y can only happen between squares that are not on one line, and such
	// moves fail the axis check below whatever their order.
	sorted := append([]move.Placement(nil), m.Placements...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].X+sorted[i].Y, sorted[j].X+sorted[j].Y
		if si != sj {
			return si < sj
		}
		return sorted[i].X < sorted[j].X
	})

	var prev move.Placement
	axis := noAxis
	foundAdjacentExistingTile := false
	startSquareCovered := false

	for i, p := range sorted {
		if !InBounds(p.X, p.Y) {
			return false
		}
		if b.occupied(p.X, p.Y) {
			return false
		}

		if i > 0 {
			if i == 1 {
				// Find out which direction the tiles are heading in
				switch {
				case prev.X == p.X:
					axis = xAxis
				case prev.Y == p.Y:
					axis = yAxis
				default:
					return false
				}
			} else if axis == xAxis && p.X != prev.X {
				return false
			} else if axis == yAxis && p.Y != prev.Y {
				return false
			}

			// Placed tiles and committed tiles must form one contiguous line.
			// Any gap since the previous placement has to be filled already.
			if axis == xAxis {
				for y := prev.Y + 1; y < p.Y; y++ {
					if !b.occupied(p.X, y) {
						return false
					}
				}
			} else {
				for x := prev.X + 1; x < p.X; x++ {
					if !b.occupied(x, p.Y) {
						return false
					}
				}
			}
		}

		if b.hasTiles {
			if !foundAdjacentExistingTile {
				foundAdjacentExistingTile = b.occupied(p.X, p.Y-1) ||
					b.occupied(p.X, p.Y+1) ||
					b.occupied(p.X-1, p.Y) ||
					b.occupied(p.X+1, p.Y)
			}
		} else if !startSquareCovered {
			startSquareCovered = b.Bonus(p.X, p.Y) == StartSquare
		}

		for _, other := range sorted[i+1:] {
			if p.X == other.X && p.Y == other.Y {
				return false
			}
		}

		prev = p
	}

	if b.hasTiles {
		return foundAdjacentExistingTile
	}
	return startSquareCovered
}

// WordsForMove returns every word of two or more letters that runs through
// a tile of the move, in the order they are discovered.
func (b *Board) WordsForMove(m *move.Move) []*move.Word {
	skipForHorizontal := map[Coord]bool{}
	skipForVertical := map[Coord]bool{}
	words := []*move.Word{}

	tileAt := func(x, y int) (tilemapping.Tile, bool) {
		if t, ok := b.Tile(x, y); ok {
			return t, true
		}
		return m.Tile(x, y)
	}
	hasTile := func(x, y int) bool {
		_, ok := tileAt(x, y)
		return ok
	}

	for _, p := range m.Placements {
		if !skipForHorizontal[Coord{p.X, p.Y}] {
			x := p.X
			for hasTile(x-1, p.Y) {
				x--
			}
			// A tile to the right means we've found a word.
			if hasTile(x+1, p.Y) {
				word := &move.Word{}
				words = append(words, word)
				for {
					t, ok := tileAt(x, p.Y)
					if !ok {
						break
					}
					word.Add(t, x, p.Y)
					skipForHorizontal[Coord{x, p.Y}] = true
					x++
				}
			}
		}

		if !skipForVertical[Coord{p.X, p.Y}] {
			y := p.Y
			for hasTile(p.X, y-1) {
				y--
			}
			if hasTile(p.X, y+1) {
				word := &move.Word{}
				words = append(words, word)
				for {
					t, ok := tileAt(p.X, y)
					if !ok {
						break
					}
					word.Add(t, p.X, y)
					skipForVertical[Coord{p.X, y}] = true
					y++
				}
			}
		}
	}
	return words
}

// ScoreForWords scores words formed by a move that has not been committed
// yet. Premium squares only count under tiles that are not already on the
// board.
func (b *Board) ScoreForWords(words []*move.Word) int {
	score := 0
	for _, word := range words {
		wordScore := 0
		wordMultiplier := 1

		for _, p := range word.Placements {
			bonus := NoBonus
			if !b.occupied(p.X, p.Y) {
				bonus = b.Bonus(p.X, p.Y)
			}
			letterMultiplier := 1
			switch bonus {
			case Bonus3WS:
				wordMultiplier *= 3
			case Bonus2WS:
				wordMultiplier *= 2
			case Bonus3LS:
				letterMultiplier = 3
			case Bonus2LS:
				letterMultiplier = 2
			}
			wordScore += p.Tile.Score() * letterMultiplier
		}
		score += wordScore * wordMultiplier
	}
	return score
}

// ScoreMove finds the words a move forms and scores them.
func (b *Board) ScoreMove(m *move.Move) ([]*move.Word, int) {
	words := b.WordsForMove(m)
	return words, b.ScoreForWords(words)
}

// PlayMove commits every placement of the move.
func (b *Board) PlayMove(m *move.Move) error {
	for _, p := range m.Placements {
		if err := b.PlaceTile(p.Tile, p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
