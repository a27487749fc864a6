package interpreter

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one parsed input line. Exactly one field is set.
type Command struct {
	PlaceRobot *PlaceRobot `parser:"  @@"`
	PlaceWall  *PlaceWall  `parser:"| @@"`
	Move       bool        `parser:"| @'MOVE'"`
	Left       bool        `parser:"| @'LEFT'"`
	Right      bool        `parser:"| @'RIGHT'"`
	Report     bool        `parser:"| @'REPORT'"`
}

// Coordinates are captured as text and converted in decimal so that
// leading zeros are not read as octal.
type PlaceRobot struct {
	Row    string `parser:"'PLACE_ROBOT' @Int"`
	Col    string `parser:"',' @Int"`
	Facing string `parser:"',' @Ident"`
}

type PlaceWall struct {
	Row string `parser:"'PLACE_WALL' @Int"`
	Col string `parser:"',' @Int"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Punct", Pattern: `,`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Ident"),
)

// Parse parses a single command line.
func Parse(line string) (*Command, error) {
	return parser.ParseString("", line)
}

// Kind reports which command c holds.
func (c *Command) Kind() Kind {
	switch {
	case c == nil:
		return KindNone
	case c.PlaceRobot != nil:
		return KindPlaceRobot
	case c.PlaceWall != nil:
		return KindPlaceWall
	case c.Move:
		return KindMove
	case c.Left:
		return KindLeft
	case c.Right:
		return KindRight
	case c.Report:
		return KindReport
	}
	return KindNone
}
