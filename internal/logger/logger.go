// Package logger provides level-prefixed logging for the simulator.
// Output goes to its own writer so stdout stays free for reports.
package logger

import (
	"fmt"
	"io"
	"log"
)

const flags = log.Ldate | log.Ltime | log.Lmicroseconds

// Logger writes level-tagged lines. Debug lines are dropped unless enabled.
type Logger struct {
	out   *log.Logger
	debug bool
	tag   string
}

// New creates a logger writing to w.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{out: log.New(w, "", flags), debug: debug}
}

// With returns a logger that prefixes every message with tag.
func (l *Logger) With(tag string) *Logger {
	next := *l
	if next.tag != "" {
		tag = next.tag + " " + tag
	}
	next.tag = tag
	return &next
}

func (l *Logger) Info(msg string)  { l.print("INFO", msg) }
func (l *Logger) Warn(msg string)  { l.print("WARN", msg) }
func (l *Logger) Error(msg string) { l.print("ERROR", msg) }

// Debugf logs only when the logger was created with debug enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.print("DEBUG", fmt.Sprintf(format, args...))
	}
}

func (l *Logger) print(level, msg string) {
	if l.tag != "" {
		l.out.Printf("[%s] [%s] %s", level, l.tag, msg)
		return
	}
	l.out.Printf("[%s] %s", level, msg)
}
