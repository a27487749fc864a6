package board

import (
	"bufio"
	"io"
)

// Render draws the board in the layout format, northmost row first.
func Render(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for row := b.height; row >= 1; row-- {
		for col := 1; col <= b.width; col++ {
			p := Position{Row: row, Col: col}
			switch {
			case b.IsRobotAt(p):
				bw.WriteRune(glyphFor(b.robot.facing))
			case b.IsWallAt(p):
				bw.WriteByte('#')
			default:
				bw.WriteByte('.')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
