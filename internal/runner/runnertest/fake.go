// Package runnertest provides an in-memory runner.Executor for tests.
package runnertest

import (
	"context"
	"strings"

	"github.com/agentx-labs/create-my-app/internal/runner"
)

// Handler decides the outcome of one command. Returning a nil Result and nil
// error means "exit 0, no output".
type Handler func(cmd runner.Command) (*runner.Result, error)

// Fake records every command and answers with Handler.
type Fake struct {
	Calls   []runner.Command
	Handler Handler
}

// Run implements runner.Executor.
func (f *Fake) Run(ctx context.Context, cmd runner.Command) (*runner.Result, error) {
	f.Calls = append(f.Calls, cmd)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Handler == nil {
		return &runner.Result{Command: cmd}, nil
	}
	res, err := f.Handler(cmd)
	if res == nil && err == nil {
		res = &runner.Result{}
	}
	if res != nil {
		res.Command = cmd
	}
	return res, err
}

// CallStrings returns the recorded command lines.
func (f *Fake) CallStrings() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.String()
	}
	return out
}

// Matches reports whether cmd's argument list starts with prefix.
func Matches(cmd runner.Command, prefix ...string) bool {
	if len(cmd.Args) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if cmd.Args[i] != p {
			return false
		}
	}
	return true
}

// Exit builds a Result with the given exit code and stderr.
func Exit(code int, stderr string) *runner.Result {
	return &runner.Result{ExitCode: code, Stderr: stderr}
}

// Stdout builds a successful Result with the given stdout.
func Stdout(s string) *runner.Result {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return &runner.Result{Stdout: s}
}
