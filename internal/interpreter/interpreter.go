package interpreter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"toyrobot/internal/board"
)

var (
	// ErrSyntax wraps every failure to parse a command line.
	ErrSyntax = errors.New("syntax error")
	// ErrWallRefused is returned when the board declines a wall.
	ErrWallRefused = errors.New("wall refused")
)

// Kind identifies a command.
type Kind int

const (
	KindNone Kind = iota
	KindPlaceRobot
	KindPlaceWall
	KindMove
	KindLeft
	KindRight
	KindReport
)

var kindNames = [...]string{"NONE", "PLACE_ROBOT", "PLACE_WALL", "MOVE", "LEFT", "RIGHT", "REPORT"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Status is what became of a command.
type Status int

const (
	// Applied: the board executed the command.
	Applied Status = iota
	// Ignored: blank, unknown or malformed input.
	Ignored
	// Rejected: well formed, but the board declined it or had nothing to act on.
	Rejected
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is the result of running one line. Failures are carried here
// rather than returned, so no command can abort a session.
type Outcome struct {
	Kind   Kind
	Status Status
	Move   board.MoveResult // set for MOVE
	Report string           // set for REPORT
	Err    error
}

// Logger receives a line for every command that was not applied. Session
// tagging is the logger's job.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Interpreter translates text commands into board operations.
type Interpreter struct {
	board *board.Board
	log   Logger
	id    uuid.UUID
}

type Option func(*Interpreter)

func WithLogger(l Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.log = l
		}
	}
}

// WithSessionID fixes the session ID instead of generating one.
func WithSessionID(id uuid.UUID) Option {
	return func(in *Interpreter) {
		in.id = id
	}
}

func New(b *board.Board, opts ...Option) *Interpreter {
	in := &Interpreter{board: b, log: nopLogger{}, id: uuid.New()}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Interpreter) ID() uuid.UUID       { return in.id }
func (in *Interpreter) Board() *board.Board { return in.board }
func (in *Interpreter) Report() string      { return in.board.Report() }

// Run executes one line and describes what happened.
func (in *Interpreter) Run(line string) Outcome {
	if strings.TrimSpace(line) == "" {
		return Outcome{Status: Ignored}
	}
	cmd, err := Parse(line)
	if err != nil {
		o := Outcome{Status: Ignored, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
		in.log.Debugf("%q %s: %v", line, o.Status, o.Err)
		return o
	}
	o := in.exec(cmd)
	if o.Status != Applied {
		in.log.Debugf("%q %s: %v", line, o.Status, o.describe())
	}
	return o
}

// ExecuteCommand runs one line and always returns "". Failures are
// swallowed; REPORT output is read through Report.
func (in *Interpreter) ExecuteCommand(line string) string {
	in.Run(line)
	return ""
}

// ExecuteCommands runs lines in order and returns the last non-empty
// result of ExecuteCommand.
func (in *Interpreter) ExecuteCommands(lines []string) string {
	last := ""
	for _, line := range lines {
		if res := in.ExecuteCommand(line); res != "" {
			last = res
		}
	}
	return last
}

func (in *Interpreter) exec(cmd *Command) Outcome {
	o := Outcome{Kind: cmd.Kind(), Status: Applied}
	switch o.Kind {
	case KindPlaceRobot:
		p, err := position(cmd.PlaceRobot.Row, cmd.PlaceRobot.Col)
		if err != nil {
			return o.fail(err)
		}
		f, err := board.ParseFacing(cmd.PlaceRobot.Facing)
		if err != nil {
			return o.fail(err)
		}
		if err := in.board.PlaceRobot(p, f); err != nil {
			return o.fail(err)
		}
	case KindPlaceWall:
		p, err := position(cmd.PlaceWall.Row, cmd.PlaceWall.Col)
		if err != nil {
			return o.fail(err)
		}
		if !in.board.PlaceWall(p) {
			return o.fail(fmt.Errorf("%w at %s", ErrWallRefused, p))
		}
	case KindMove:
		o.Move = in.board.MoveRobot()
		if o.Move == board.MoveNoRobot || o.Move == board.MoveBlocked {
			o.Status = Rejected
		}
	case KindLeft, KindRight:
		if _, ok := in.board.Robot(); !ok {
			o.Status = Rejected
			break
		}
		if o.Kind == KindLeft {
			in.board.TurnRobotLeft()
		} else {
			in.board.TurnRobotRight()
		}
	case KindReport:
		o.Report = in.board.Report()
		if o.Report == "" {
			o.Status = Rejected
		}
	default:
		o.Status = Ignored
	}
	return o
}

// fail records err. Input that could never be valid is Ignored, the
// rest is Rejected.
func (o Outcome) fail(err error) Outcome {
	o.Err = err
	if errors.Is(err, ErrSyntax) || errors.Is(err, board.ErrUnknownFacing) {
		o.Status = Ignored
	} else {
		o.Status = Rejected
	}
	return o
}

func (o Outcome) describe() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	if o.Kind == KindMove {
		return o.Move.String()
	}
	return "no robot"
}

// position converts decimal coordinates and checks their lower bound.
func position(row, col string) (board.Position, error) {
	r, err := strconv.Atoi(row)
	if err != nil {
		return board.Position{}, fmt.Errorf("%w: row %q", ErrSyntax, row)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return board.Position{}, fmt.Errorf("%w: col %q", ErrSyntax, col)
	}
	return board.NewPosition(r, c)
}
