package errorkit

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// WithStack attaches a stack to the error value.
// The frames are copied, later changes to the passed slice don't affect the traced error.
// An error which is already traced keeps its original stack.
func WithStack(err error, stack []runtime.Frame) error {
	if err == nil {
		return err
	}
	if errors.As(err, &TracedError{}) {
		return err
	}
	return TracedError{
		Err:   err,
		Stack: append([]runtime.Frame{}, stack...),
	}
}

// TracedError is an error with a stack attached to it.
// The Stack is expected to be in the innermost-first order, the way runtime.Callers reports it.
type TracedError struct {
	Err   error
	Stack []runtime.Frame
}

func (err TracedError) Error() string {
	var msg string
	if err.Err != nil {
		msg += err.Err.Error()
	}
	if 0 < len(err.Stack) {
		var traceLines []string
		for _, frame := range err.Stack {
			traceLines = append(traceLines, FrameString(frame))
		}
		if err.Err != nil {
			msg += "\n\n"
		}
		msg += strings.Join(traceLines, "\n")
	}
	return msg
}

// FrameString formats a stack frame the way go test output shows source locations.
func FrameString(f runtime.Frame) string {
	msg := fmt.Sprintf("%s:%d", f.File, f.Line)
	if 0 < len(f.Function) {
		msg = fmt.Sprintf("%s\n\t%s", f.Function, msg)
	}
	return msg
}

func (err TracedError) Unwrap() error {
	return err.Err
}
