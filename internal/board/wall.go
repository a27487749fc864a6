package board

import "fmt"

// Wall blocks a single cell.
type Wall struct {
	position Position
}

// NewWall requires a non-zero position.
func NewWall(p Position) (Wall, error) {
	if p.IsZero() {
		return Wall{}, fmt.Errorf("wall position: %w", ErrNullArgument)
	}
	return Wall{position: p}, nil
}

func (w Wall) Position() Position {
	return w.position
}

func (w Wall) String() string {
	return fmt.Sprintf("wall at %s", w.position)
}
