package runner

import (
	"context"
	"strings"
	"time"
)

// Executor runs one external command to completion.
type Executor interface {
	// Run blocks until cmd exits. A non-zero exit is reported through
	// Result.ExitCode, not as an error; the error return is for commands
	// that could not be started, were cancelled, or timed out.
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Command is a program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // working directory; empty means the current one
}

// String renders the command line for diagnostics.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

// Result captures the outcome of a command.
type Result struct {
	Command  Command
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	TimedOut bool
}

// Success reports whether the command exited with status 0.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0 && !r.TimedOut
}

// Output returns captured stderr, falling back to stdout when stderr is empty.
func (r *Result) Output() string {
	if r == nil {
		return ""
	}
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\"'") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
