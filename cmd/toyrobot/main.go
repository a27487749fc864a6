package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"toyrobot/internal/board"
	"toyrobot/internal/config"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/logger"
)

const banner = `Welcome to the Toy Robot Simulator!
Type commands to control the robot, or 'EXIT' to quit.

Available commands:
  PLACE_ROBOT ROW,COL,FACING
  PLACE_WALL ROW,COL
  MOVE
  LEFT
  RIGHT
  REPORT
`

var errUsage = errors.New("usage: toyrobot [flags] [script file]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.New(os.Stderr, false).Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("toyrobot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height in rows")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width in columns")
	fs.StringVar(&cfg.LayoutFile, "layout", cfg.LayoutFile, "start from a board drawing (overrides -height and -width)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log commands that were not applied")
	show := fs.Bool("show", false, "draw the board after every applied command")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errUsage
	}

	id := uuid.New()
	lg := logger.New(stderr, cfg.Debug).With("session=" + id.String())
	if cfg.LayoutFile != "" {
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "height" || f.Name == "width" {
				lg.Warn(fmt.Sprintf("-%s ignored, size comes from layout %s", f.Name, cfg.LayoutFile))
			}
		})
	}

	b, err := newBoard(cfg)
	if err != nil {
		return err
	}
	in := interpreter.New(b, interpreter.WithLogger(lg), interpreter.WithSessionID(id))
	lg.Info(fmt.Sprintf("%dx%d board, %d walls", b.Height(), b.Width(), len(b.Walls())))

	s := &session{in: in, out: stdout, log: lg, show: *show}

	// run a script from disk
	if fs.NArg() == 1 {
		data, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			return err
		}
		for _, line := range strings.Split(string(data), "\n") {
			if s.step(line) {
				break
			}
		}
		return nil
	}

	fmt.Fprint(stdout, banner+"\n")
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return scanner.Err()
		}
		if s.step(scanner.Text()) {
			fmt.Fprintln(stdout, "Exiting the simulator.")
			return nil
		}
	}
}

func newBoard(cfg config.Config) (*board.Board, error) {
	if cfg.LayoutFile != "" {
		return board.LoadLayout(cfg.LayoutFile)
	}
	return board.NewBoard(cfg.Height, cfg.Width)
}

type session struct {
	in   *interpreter.Interpreter
	out  io.Writer
	log  *logger.Logger
	show bool
}

// step runs one line and reports whether the session should end.
func (s *session) step(line string) bool {
	if strings.EqualFold(strings.TrimSpace(line), "EXIT") {
		return true
	}
	o := s.in.Run(line)
	if o.Status != interpreter.Applied {
		return false
	}
	if o.Kind == interpreter.KindReport {
		fmt.Fprintln(s.out, o.Report)
	} else if s.show {
		if err := board.Render(s.out, s.in.Board()); err != nil {
			s.log.Error("render board: " + err.Error())
		}
	}
	return false
}
