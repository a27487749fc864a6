package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(t *testing.T, row, col int) Position {
	t.Helper()
	p, err := NewPosition(row, col)
	require.NoError(t, err)
	return p
}

func TestNewPosition(t *testing.T) {
	cases := []struct {
		row, col int
		wantErr  bool
	}{
		{1, 1, false},
		{5, 3, false},
		{100, 100, false},
		{0, 1, true},
		{1, 0, true},
		{-1, 4, true},
		{3, -7, true},
	}
	for _, tc := range cases {
		p, err := NewPosition(tc.row, tc.col)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrOutOfRange, "(%d,%d)", tc.row, tc.col)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, Position{Row: tc.row, Col: tc.col}, p)
	}
}

func TestPositionEqualityAndString(t *testing.T) {
	a, b := pos(t, 2, 3), pos(t, 2, 3)
	assert.True(t, a == b)
	assert.NotEqual(t, a, pos(t, 3, 2))
	assert.Equal(t, "2,3", a.String())

	seen := map[Position]bool{a: true}
	assert.True(t, seen[b])
}

func TestPositionStep(t *testing.T) {
	p := pos(t, 3, 3)
	assert.Equal(t, Position{Row: 4, Col: 3}, p.Step(North))
	assert.Equal(t, Position{Row: 2, Col: 3}, p.Step(South))
	assert.Equal(t, Position{Row: 3, Col: 4}, p.Step(East))
	assert.Equal(t, Position{Row: 3, Col: 2}, p.Step(West))
}

func TestFacingTurns(t *testing.T) {
	assert.Equal(t, West, North.Left())
	assert.Equal(t, South, West.Left())
	assert.Equal(t, East, South.Left())
	assert.Equal(t, North, East.Left())
	assert.Equal(t, East, North.Right())

	for _, f := range []Facing{North, South, East, West} {
		l, r := f, f
		for i := 0; i < 4; i++ {
			l, r = l.Left(), r.Right()
		}
		assert.Equal(t, f, l)
		assert.Equal(t, f, r)
		assert.Equal(t, f, f.Left().Right())
	}
}

func TestParseFacing(t *testing.T) {
	for in, want := range map[string]Facing{
		"NORTH": North,
		"north": North,
		"SoUtH": South,
		"east":  East,
		"West":  West,
	} {
		got, err := ParseFacing(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "UP", "N", "northeast"} {
		_, err := ParseFacing(in)
		assert.ErrorIs(t, err, ErrUnknownFacing, in)
	}
}

func TestWallAndRobotRequireValues(t *testing.T) {
	_, err := NewWall(Position{})
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = NewRobot(Position{}, North)
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = NewRobot(pos(t, 1, 1), Facing(0))
	assert.ErrorIs(t, err, ErrNullArgument)

	w, err := NewWall(pos(t, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, "wall at 2,4", w.String())
}

func TestRobotTransitionsReturnNewValues(t *testing.T) {
	r, err := NewRobot(pos(t, 2, 2), North)
	require.NoError(t, err)

	left := r.TurnedLeft()
	moved := r.Moved(pos(t, 3, 2))

	assert.Equal(t, "2,2,NORTH", r.String())
	assert.Equal(t, "2,2,WEST", left.String())
	assert.Equal(t, "3,2,NORTH", moved.String())
	assert.Equal(t, East, r.TurnedRight().Facing())
}
