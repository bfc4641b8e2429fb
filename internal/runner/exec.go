package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait keeps copying output after the process is
// killed; package managers leave grandchildren holding the pipes.
const waitDelay = 5 * time.Second

// ExecExecutor runs commands with os/exec. Children read stdin from the null
// device, so a scaffolder that asks its own questions sees end of input
// instead of waiting on the terminal.
type ExecExecutor struct {
	// Stdout and Stderr receive live output; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Timeout applies to each command. Zero disables it.
	Timeout time.Duration
}

// Run executes cmd, teeing its output to the configured writers and to the
// returned Result.
func (e *ExecExecutor) Run(ctx context.Context, cmd Command) (*Result, error) {
	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", cmd.Name, err)
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir
	c.WaitDelay = waitDelay

	stdout := e.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := e.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	c.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	c.Stderr = io.MultiWriter(stderr, &stderrBuf)

	start := time.Now()
	err = c.Run()

	result := &Result{
		Command:  cmd,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.ExitCode = -1
		return result, fmt.Errorf("%s timed out after %s: %w", cmd.Name, e.Timeout, context.DeadlineExceeded)
	}
	if ctx.Err() != nil {
		result.ExitCode = -1
		return result, fmt.Errorf("running %s: %w", cmd.Name, ctx.Err())
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("executing %s: %w", cmd.Name, err)
	}

	return result, nil
}
