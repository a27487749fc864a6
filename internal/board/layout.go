package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Layout format: one line per row, northmost row first.
//
//	.  empty cell
//	#  wall
//	^ v > <  robot facing north, south, east, west
//
// Blank lines and lines starting with ';' are skipped.

var robotGlyphs = map[rune]Facing{
	'^': North,
	'v': South,
	'>': East,
	'<': West,
}

func glyphFor(f Facing) rune {
	for g, gf := range robotGlyphs {
		if gf == f {
			return g
		}
	}
	return '?'
}

// LoadLayout reads a board drawing from a file.
func LoadLayout(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLayout(f)
}

// ReadLayout builds a board from a drawing in the layout format.
func ReadLayout(r io.Reader) (*Board, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	height, width := len(rows), utf8.RuneCountInString(rows[0])
	var (
		walls    []Position
		opts     []Option
		robotSet bool
	)
	for i, line := range rows {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrInvalidLayout, i+1, n, width)
		}
		row, col := height-i, 0
		for _, c := range line {
			col++
			p := Position{Row: row, Col: col}
			switch c {
			case '.':
			case '#':
				walls = append(walls, p)
			default:
				f, ok := robotGlyphs[c]
				if !ok {
					return nil, fmt.Errorf("%w: unexpected %q at line %d col %d", ErrInvalidLayout, c, i+1, col)
				}
				if robotSet {
					return nil, fmt.Errorf("%w: more than one robot", ErrInvalidLayout)
				}
				robotSet = true
				opts = append(opts, WithRobot(p, f))
			}
		}
	}
	opts = append([]Option{WithWalls(walls...)}, opts...)
	return NewBoard(height, width, opts...)
}
