package board

import "fmt"

// OutOfBoundsError is returned when a tile is committed off the board.
type OutOfBoundsError struct {
	X int
	Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %d,%d is out of bounds", e.X, e.Y)
}
