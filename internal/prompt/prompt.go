package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentx-labs/create-my-app/internal/project"
	"github.com/mattn/go-isatty"
)

// Collect asks for the project name and the TypeScript choice, in that order.
// Reaching end of input before an answer is given yields an error wrapping
// project.ErrInputUnavailable; cancelling ctx abandons the pending read.
// With echo set, each answer is written back to w so piped input still reads
// as a transcript.
func Collect(ctx context.Context, r io.Reader, w io.Writer, echo bool) (*project.RunConfig, error) {
	lr := &lineReader{ctx: ctx, reader: bufio.NewReader(r)}
	if echo {
		lr.echo = w
	}
	defaults := project.Defaults()

	fmt.Fprintf(w, "Enter your project name: (%s) ", defaults.ProjectName)
	name, err := lr.readLine("project name")
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = defaults.ProjectName
	}

	useTS, err := confirm(lr, w, "Would you like to use TypeScript?", defaults.UseTypeScript)
	if err != nil {
		return nil, err
	}

	return &project.RunConfig{ProjectName: name, UseTypeScript: useTS}, nil
}

// CollectDefaults returns the defaults without reading input, echoing the
// chosen values so the transcript matches an interactive run.
func CollectDefaults(w io.Writer) *project.RunConfig {
	c := project.Defaults()
	fmt.Fprintf(w, "Project name: %s\n", c.ProjectName)
	fmt.Fprintf(w, "Use TypeScript: %s\n", yesNo(c.UseTypeScript))
	return &c
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// confirm asks a yes/no question until it gets a recognizable answer.
func confirm(lr *lineReader, w io.Writer, question string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	for {
		fmt.Fprintf(w, "%s %s ", question, hint)
		answer, err := lr.readLine("confirmation")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(w, "Please answer y or n.\n")
	}
}

type lineReader struct {
	ctx    context.Context
	reader *bufio.Reader
	echo   io.Writer // nil when the terminal echoes input itself
}

type lineRead struct {
	line string
	err  error
}

// readLine reads one trimmed line. A final line without a newline is still
// returned; an empty read at end of input is reported as unavailable. The
// blocking read runs in its own goroutine so an interrupt is not held up
// waiting for Enter.
func (lr *lineReader) readLine(what string) (string, error) {
	done := make(chan lineRead, 1)
	go func() {
		line, err := lr.reader.ReadString('\n')
		done <- lineRead{line: line, err: err}
	}()

	var got lineRead
	select {
	case <-lr.ctx.Done():
		return "", fmt.Errorf("interrupted while reading %s: %w", what, lr.ctx.Err())
	case got = <-done:
	}

	if got.err != nil && !errors.Is(got.err, io.EOF) {
		return "", project.Wrap(project.ErrInputUnavailable, "prompt", got.err, "reading %s", what)
	}
	if errors.Is(got.err, io.EOF) && got.line == "" {
		return "", project.Errorf(project.ErrInputUnavailable, "prompt", "no %s given before end of input", what)
	}

	answer := strings.TrimSpace(got.line)
	if lr.echo != nil {
		fmt.Fprintln(lr.echo, answer)
	}
	return answer, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
