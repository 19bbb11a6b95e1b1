package game

import (
	"time"

	"github.com/domino14/webwords/move"
	"github.com/domino14/webwords/tilemapping"
)

// Record is the game's backing store. Whoever persists games owns how a
// Record is loaded and saved; the engine only reads and writes its fields.
type Record struct {
	ID        string           `json:"_id"`
	Local     bool             `json:"local"`
	LetterBag *tilemapping.Bag `json:"letterBag"`
	Over      bool             `json:"over"`
	Started   time.Time        `json:"started"`
	Moves     []MoveRecord     `json:"moves"`
	Players   []*PlayerRecord  `json:"players"`
}

// PlayerRecord is one seat in a game.
type PlayerRecord struct {
	User     string            `json:"user"`
	Letters  *tilemapping.Rack `json:"letters"`
	Score    int               `json:"score"`
	Resigned bool              `json:"resigned"`
}

// MoveRecord is one entry of the append-only move history. Swaps and skips
// are stored with no placements.
type MoveRecord struct {
	Placements  []move.Placement `json:"placements"`
	BagWasEmpty bool             `json:"bagWasEmpty"`
	Date        time.Time        `json:"date"`
}

// IsEmpty reports whether no tiles were placed on this turn.
func (m MoveRecord) IsEmpty() bool {
	return len(m.Placements) == 0
}
