package board

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a coordinate is below 1.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidPosition is returned when a position lies outside the board.
	ErrInvalidPosition = errors.New("position outside the board")
	// ErrRobotPlacementBlocked is returned when a wall occupies the placement cell.
	ErrRobotPlacementBlocked = errors.New("robot placement blocked by wall")
	// ErrNullArgument is returned when a required value is missing.
	ErrNullArgument = errors.New("required argument missing")

	ErrInvalidDimensions = errors.New("board dimensions must be at least 1x1")
	ErrUnknownFacing     = errors.New("unknown facing")
	ErrInvalidLayout     = errors.New("invalid layout")
)

// PlacementError reports a rejected robot placement.
type PlacementError struct {
	Position Position
	Err      error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place robot at %s: %v", e.Position, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
