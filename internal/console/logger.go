// Package console provides the status logger a migration reports progress
// through. Levels are rendered with lipgloss styles bound to the output
// writer, so colors are dropped automatically when the writer is not a
// terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Logger receives human-readable status lines.
type Logger interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

// Level identifies the severity of a status line.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelErr     Level = "error"
)

var colors = struct {
	Blue, Green, Yellow, Red lipgloss.AdaptiveColor
}{
	Blue:   lipgloss.AdaptiveColor{Dark: "#679FE1", Light: "#1D2A3A"},
	Green:  lipgloss.AdaptiveColor{Dark: "#63AC67", Light: "#5B8537"},
	Yellow: lipgloss.AdaptiveColor{Dark: "#FBE331", Light: "#C0A802"},
	Red:    lipgloss.AdaptiveColor{Dark: "#D93337", Light: "#54121B"},
}

// StyledLogger writes one styled line per message to its writer.
type StyledLogger struct {
	w      io.Writer
	styles map[Level]lipgloss.Style
}

var _ Logger = (*StyledLogger)(nil)

// New returns a logger writing to w. With color false, or when NO_COLOR is
// set, lines are written as plain text.
func New(w io.Writer, color bool) *StyledLogger {
	l := &StyledLogger{w: w}
	if !color || os.Getenv("NO_COLOR") != "" {
		return l
	}

	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().Bold(true)
	l.styles = map[Level]lipgloss.Style{
		LevelInfo:    base.Foreground(colors.Blue),
		LevelSuccess: base.Foreground(colors.Green),
		LevelWarn:    base.Foreground(colors.Yellow),
		LevelErr:     base.Foreground(colors.Red),
	}
	return l
}

func (l *StyledLogger) Info(msg string)    { l.print(LevelInfo, msg) }
func (l *StyledLogger) Success(msg string) { l.print(LevelSuccess, msg) }
func (l *StyledLogger) Warn(msg string)    { l.print(LevelWarn, msg) }
func (l *StyledLogger) Error(msg string)   { l.print(LevelErr, msg) }

// Infof formats according to a format specifier and logs at info level.
func (l *StyledLogger) Infof(format string, a ...any) { l.Info(fmt.Sprintf(format, a...)) }

// Successf formats according to a format specifier and logs at success level.
func (l *StyledLogger) Successf(format string, a ...any) { l.Success(fmt.Sprintf(format, a...)) }

// Warnf formats according to a format specifier and logs at warn level.
func (l *StyledLogger) Warnf(format string, a ...any) { l.Warn(fmt.Sprintf(format, a...)) }

// Errorf formats according to a format specifier and logs at error level.
func (l *StyledLogger) Errorf(format string, a ...any) { l.Error(fmt.Sprintf(format, a...)) }

func (l *StyledLogger) print(level Level, msg string) {
	if style, ok := l.styles[level]; ok {
		msg = style.Render(msg)
	}
	fmt.Fprintln(l.w, msg)
}
