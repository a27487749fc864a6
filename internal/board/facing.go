package board

import (
	"fmt"
	"strings"
)

// Facing is the robot's heading. The zero value is not a valid facing.
type Facing int

const (
	North Facing = iota + 1
	South
	East
	West
)

var facingNames = map[Facing]string{
	North: "NORTH",
	South: "SOUTH",
	East:  "EAST",
	West:  "WEST",
}

// facing => offset, row grows northward
var facingVectors = map[Facing]struct{ dRow, dCol int }{
	North: {1, 0},
	South: {-1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// ParseFacing matches a facing name case-insensitively.
func ParseFacing(s string) (Facing, error) {
	for f, name := range facingNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFacing)
}

func (f Facing) Valid() bool {
	_, ok := facingNames[f]
	return ok
}

// Left rotates 90 degrees counter-clockwise.
func (f Facing) Left() Facing {
	switch f {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	return f
}

// Right rotates 90 degrees clockwise.
func (f Facing) Right() Facing {
	switch f {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return f
}

func (f Facing) String() string {
	if name, ok := facingNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}
