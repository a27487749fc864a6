package board

import "fmt"

// Robot is an immutable snapshot of position and facing. Every
// transition returns a new value.
type Robot struct {
	position Position
	facing   Facing
}

// NewRobot requires a non-zero position and a valid facing.
func NewRobot(p Position, f Facing) (Robot, error) {
	if p.IsZero() {
		return Robot{}, fmt.Errorf("robot position: %w", ErrNullArgument)
	}
	if !f.Valid() {
		return Robot{}, fmt.Errorf("robot facing: %w", ErrNullArgument)
	}
	return Robot{position: p, facing: f}, nil
}

func (r Robot) Position() Position { return r.position }
func (r Robot) Facing() Facing     { return r.facing }

func (r Robot) Moved(p Position) Robot {
	return Robot{position: p, facing: r.facing}
}

func (r Robot) TurnedLeft() Robot {
	return Robot{position: r.position, facing: r.facing.Left()}
}

func (r Robot) TurnedRight() Robot {
	return Robot{position: r.position, facing: r.facing.Right()}
}

// String renders the report form "row,col,FACING".
func (r Robot) String() string {
	return fmt.Sprintf("%s,%s", r.position, r.facing)
}
