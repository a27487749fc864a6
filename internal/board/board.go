package board

import "fmt"

const (
	DefaultHeight = 5
	DefaultWidth  = 5
)

// MoveResult describes what MoveRobot did.
type MoveResult int

const (
	MoveNoRobot MoveResult = iota
	MoveBlocked
	MoveAdvanced
	MoveWrapped
)

func (m MoveResult) String() string {
	switch m {
	case MoveNoRobot:
		return "no robot"
	case MoveBlocked:
		return "blocked"
	case MoveAdvanced:
		return "advanced"
	case MoveWrapped:
		return "wrapped"
	}
	return fmt.Sprintf("MoveResult(%d)", int(m))
}

// Board owns the grid, its walls and at most one robot. It is not safe
// for concurrent use.
type Board struct {
	height, width int
	walls         []Wall
	robot         *Robot
}

// Option seeds a board at construction time.
type Option func(*Board) error

// WithWalls places walls in order, with the same rules as PlaceWall.
func WithWalls(positions ...Position) Option {
	return func(b *Board) error {
		for _, p := range positions {
			if !b.PlaceWall(p) {
				return fmt.Errorf("seed wall at %s: %w", p, ErrInvalidPosition)
			}
		}
		return nil
	}
}

// WithRobot places the robot, with the same rules as PlaceRobot.
func WithRobot(p Position, f Facing) Option {
	return func(b *Board) error {
		return b.PlaceRobot(p, f)
	}
}

// NewBoard creates an empty height x width board and applies opts in order.
func NewBoard(height, width int, opts ...Option) (*Board, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%dx%d: %w", height, width, ErrInvalidDimensions)
	}
	b := &Board{height: height, width: width}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

// Walls returns the walls in insertion order.
func (b *Board) Walls() []Wall {
	out := make([]Wall, len(b.walls))
	copy(out, b.walls)
	return out
}

func (b *Board) Robot() (Robot, bool) {
	if b.robot == nil {
		return Robot{}, false
	}
	return *b.robot, true
}

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 1 && p.Row <= b.height && p.Col >= 1 && p.Col <= b.width
}

func (b *Board) IsWallAt(p Position) bool {
	for _, w := range b.walls {
		if w.position == p {
			return true
		}
	}
	return false
}

func (b *Board) IsRobotAt(p Position) bool {
	return b.robot != nil && b.robot.position == p
}

// PlaceWall adds a wall and reports whether it was added. It refuses
// positions off the board, under the robot, or already walled.
func (b *Board) PlaceWall(p Position) bool {
	if !b.InBounds(p) || b.IsRobotAt(p) || b.IsWallAt(p) {
		return false
	}
	w, err := NewWall(p)
	if err != nil {
		return false
	}
	b.walls = append(b.walls, w)
	return true
}

// PlaceRobot puts a fresh robot at p, replacing any existing one.
func (b *Board) PlaceRobot(p Position, f Facing) error {
	if !b.InBounds(p) {
		return &PlacementError{Position: p, Err: ErrInvalidPosition}
	}
	if b.IsWallAt(p) {
		return &PlacementError{Position: p, Err: ErrRobotPlacementBlocked}
	}
	r, err := NewRobot(p, f)
	if err != nil {
		return &PlacementError{Position: p, Err: err}
	}
	b.robot = &r
	return nil
}

// MoveRobot advances the robot one cell, wrapping at the edges. A move
// into a wall is discarded.
func (b *Board) MoveRobot() MoveResult {
	if b.robot == nil {
		return MoveNoRobot
	}
	target, wrapped := b.wrap(b.robot.position.Step(b.robot.facing))
	if b.IsWallAt(target) {
		return MoveBlocked
	}
	moved := b.robot.Moved(target)
	b.robot = &moved
	if wrapped {
		return MoveWrapped
	}
	return MoveAdvanced
}

func (b *Board) TurnRobotLeft() {
	if b.robot == nil {
		return
	}
	turned := b.robot.TurnedLeft()
	b.robot = &turned
}

func (b *Board) TurnRobotRight() {
	if b.robot == nil {
		return
	}
	turned := b.robot.TurnedRight()
	b.robot = &turned
}

// Report returns "row,col,FACING", or "" when no robot is placed.
func (b *Board) Report() string {
	if b.robot == nil {
		return ""
	}
	return b.robot.String()
}

// wrap folds a position one step off the grid onto the opposite edge.
func (b *Board) wrap(p Position) (Position, bool) {
	wrapped := true
	switch {
	case p.Row > b.height:
		p.Row = 1
	case p.Row < 1:
		p.Row = b.height
	case p.Col > b.width:
		p.Col = 1
	case p.Col < 1:
		p.Col = b.width
	default:
		wrapped = false
	}
	return p, wrapped
}
