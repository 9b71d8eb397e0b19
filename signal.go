package insist

import (
	"errors"
	"testing"
)

// Signal is the error which terminates a test when a condition is not met.
type Signal interface{ error }

// SignalFunc builds the Signal from the failure message.
type SignalFunc func(message string) Signal

// AssertionError is raised when an assertion is not met.
type AssertionError struct{ Message string }

func (err *AssertionError) Error() string { return err.Message }

// AbortError is raised when an assumption is not met. RaiseTB skips the test on it.
type AbortError struct{ Message string }

func (err *AbortError) Error() string { return err.Message }

// IllegalStateError reports a state the code under test should never reach.
type IllegalStateError struct{ Message string }

func (err *IllegalStateError) Error() string { return err.Message }

// AssertionFailed builds an AssertionError.
func AssertionFailed(message string) Signal { return &AssertionError{Message: message} }

// TestAborted builds an AbortError.
func TestAborted(message string) Signal { return &AbortError{Message: message} }

// IllegalState builds an IllegalStateError.
func IllegalState(message string) Signal { return &IllegalStateError{Message: message} }

// WithCause attaches cause to the signal.
// The message stays the one of the signal, and both errors match errors.Is and errors.As.
func WithCause(signal Signal, cause error) Signal {
	if cause == nil {
		return signal
	}
	return causedSignal{Signal: signal, cause: cause}
}

type causedSignal struct {
	Signal
	cause error
}

func (s causedSignal) Unwrap() []error { return []error{s.Signal, s.cause} }

// Raiser raises a Signal. It is not expected to return.
type Raiser func(signal error)

// RaiseTB raises signals through the test runner.
// An AbortError skips the test, every other signal fails it.
func RaiseTB(tb testing.TB) Raiser {
	if tb == nil {
		panic(ErrInvalidArgument.F("testing.TB is nil"))
	}
	return func(signal error) {
		tb.Helper()
		var abort *AbortError
		if errors.As(signal, &abort) {
			tb.Skip(signal.Error())
			return
		}
		tb.Fatal(signal.Error())
	}
}

// RaisePanic raises the signal as a panic.
func RaisePanic(signal error) {
	panic(signal)
}
