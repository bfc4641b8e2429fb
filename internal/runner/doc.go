// Package runner defines the Executor interface used to run external
// package-manager commands, and an os/exec implementation that streams output
// to the terminal while capturing it, with an optional per-command timeout.
// Tests substitute the fake in runnertest.
package runner
