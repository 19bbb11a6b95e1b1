package tilemapping

import (
	"errors"
	"fmt"
)

var ErrUnknownLetter = errors.New("unknown letter")

// TileNotOwnedError is returned when a rack (or bag) does not hold a letter
// that is being taken from it.
type TileNotOwnedError struct {
	Letter rune
}

func (e *TileNotOwnedError) Error() string {
	return fmt.Sprintf("tile not owned: %q", e.Letter)
}
