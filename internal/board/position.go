package board

import "fmt"

// Position is a 1-based (row, col) cell coordinate. Rows grow northward.
// Upper bounds depend on the board and are checked there.
type Position struct {
	Row, Col int
}

// NewPosition validates that both coordinates are at least 1.
func NewPosition(row, col int) (Position, error) {
	if row < 1 {
		return Position{}, fmt.Errorf("row %d: %w", row, ErrOutOfRange)
	}
	if col < 1 {
		return Position{}, fmt.Errorf("col %d: %w", col, ErrOutOfRange)
	}
	return Position{Row: row, Col: col}, nil
}

// Step returns the neighbouring cell in direction f without any bounds check.
func (p Position) Step(f Facing) Position {
	v := facingVectors[f]
	return Position{Row: p.Row + v.dRow, Col: p.Col + v.dCol}
}

func (p Position) IsZero() bool {
	return p == Position{}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}
