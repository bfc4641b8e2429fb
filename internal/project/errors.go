package project

import (
	"errors"
	"fmt"
)

// Error kinds. Every one of them aborts the pipeline.
var (
	ErrInputUnavailable  = errors.New("input unavailable")
	ErrExternalProcess   = errors.New("external process failed")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrFileWrite         = errors.New("file write failed")
)

// Error describes a failed pipeline step.
type Error struct {
	Kind   error  // one of the Err* kinds above
	Op     string // step name, e.g. "scaffold" or "write"
	Msg    string
	Output string // captured process output, if any
	Err    error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Errorf builds an *Error with a formatted message and no cause.
func Errorf(kind error, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error around an underlying cause.
func Wrap(kind error, op string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...), Err: err}
}

// OutputOf returns the captured process output carried by err, if any.
func OutputOf(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Output
	}
	return ""
}
