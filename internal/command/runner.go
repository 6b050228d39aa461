package command

import (
	"context"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Run blocks until the command exits. A command that starts and exits
	// non-zero is reported through Output.ExitCode, not as an error.
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Command is a single external tool invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // Working directory; empty means the current one.
}

// String renders the command line for logs.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
}

// Succeeded reports whether a Run result is a clean zero exit.
func Succeeded(out *Output, err error) bool {
	return err == nil && out != nil && out.ExitCode == 0
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
