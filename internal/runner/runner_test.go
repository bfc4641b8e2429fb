package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Name: "npm", Args: []string{"install"}}, "npm install"},
		{
			Command{Name: "npm", Args: []string{"create", "vite@latest", "demo", "--", "--template", "react-ts"}},
			"npm create vite@latest demo -- --template react-ts",
		},
		{Command{Name: "npm", Args: []string{"create", "my app"}}, `npm create "my app"`},
		{Command{Name: "npm", Args: []string{""}}, `npm ""`},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestResultOutput(t *testing.T) {
	r := &Result{Stdout: "out\n", Stderr: "  \n"}
	if got := r.Output(); got != "out" {
		t.Errorf("Output() = %q, want %q", got, "out")
	}
	r.Stderr = "boom\n"
	if got := r.Output(); got != "boom" {
		t.Errorf("Output() = %q, want %q", got, "boom")
	}
	var nilResult *Result
	if nilResult.Success() {
		t.Error("nil result should not be successful")
	}
}

func TestExecExecutor_CapturesOutput(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	e := &ExecExecutor{Stdout: &stdout, Stderr: &stderr}

	res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo hello; echo oops >&2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success() {
		t.Errorf("expected success, got exit %d", res.ExitCode)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Errorf("captured stdout = %q", res.Stdout)
	}
	if strings.TrimSpace(res.Stderr) != "oops" {
		t.Errorf("captured stderr = %q", res.Stderr)
	}
	if !strings.Contains(stdout.String(), "hello") {
		t.Error("stdout was not streamed to the configured writer")
	}
}

func TestExecExecutor_NonZeroExit(t *testing.T) {
	requireShell(t)

	e := &ExecExecutor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo failing >&2; exit 42"}})
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if res.ExitCode != 42 {
		t.Errorf("ExitCode = %d, want 42", res.ExitCode)
	}
	if res.Output() != "failing" {
		t.Errorf("Output() = %q, want %q", res.Output(), "failing")
	}
}

func TestExecExecutor_NoStdin(t *testing.T) {
	requireShell(t)

	e := &ExecExecutor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Timeout: 5 * time.Second}
	res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "if read answer; then echo got; else echo eof; fi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "eof" {
		t.Errorf("child should see end of input, got %q", res.Stdout)
	}
}

func TestExecExecutor_WorkingDirectory(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	e := &ExecExecutor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "pwd -P"}, Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	if strings.TrimSpace(res.Stdout) != want {
		t.Errorf("pwd = %q, want %q", strings.TrimSpace(res.Stdout), want)
	}
}

func TestExecExecutor_Timeout(t *testing.T) {
	requireShell(t)

	e := &ExecExecutor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Timeout: 100 * time.Millisecond}
	res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exec sleep 5"}})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got: %v", err)
	}
	if res == nil || !res.TimedOut {
		t.Error("result should be marked as timed out")
	}
}

func TestExecExecutor_MissingBinary(t *testing.T) {
	e := &ExecExecutor{}
	_, err := e.Run(context.Background(), Command{Name: "definitely-not-a-real-binary-xyz"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "not found on PATH") {
		t.Errorf("unexpected error: %v", err)
	}
}
