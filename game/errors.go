package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/webwords/tilemapping"
)

// ErrNoMove is returned when PlayMove is called without a move.
var ErrNoMove = errors.New("no move given")

// ErrNoPlayers is returned when a game has nobody seated to take a turn.
var ErrNoPlayers = errors.New("game has no players")

// GameOverError is returned by every mutating operation once the game has
// ended.
type GameOverError struct{}

func (e *GameOverError) Error() string {
	return "the game is over"
}

// InvalidPlacementError is returned when a move's tiles cannot legally be
// placed on the board.
type InvalidPlacementError struct{}

func (e *InvalidPlacementError) Error() string {
	return "invalid tile placement"
}

// TileNotOwnedError carries the first letter a player tried to use but
// does not hold.
type TileNotOwnedError = tilemapping.TileNotOwnedError

// NotInDictionaryError lists every formed word the dictionary rejected.
type NotInDictionaryError struct {
	Words []string
}

func (e *NotInDictionaryError) Error() string {
	return fmt.Sprintf("not in dictionary: %s", strings.Join(e.Words, ", "))
}

// PlayerIndexError is returned when a player index is out of range.
type PlayerIndexError struct {
	Index      int
	NumPlayers int
}

func (e *PlayerIndexError) Error() string {
	return fmt.Sprintf("player index %d out of range for %d players", e.Index, e.NumPlayers)
}
