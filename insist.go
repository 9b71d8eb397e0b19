// Package insist provides assertions and assumptions for eventually consistent conditions.
//
// A condition is polled until it holds or the budget is used up.
// The budget is either a time limit or a retry count:
//
//	insist.Assertion(t).Within(5 * time.Second).ThatEventually(func() bool {
//		return queue.Len() == 0
//	})
//
//	insist.Assumption(t).WithMessage("service is up").WithinRetries(3).ThatEventually(isUp)
//
// When the budget is exhausted, the failure is reported with a message which tells
// how many attempts were made, and the diagnostic stack points at the calling test line.
package insist

import (
	"testing"
	"time"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/must"
	"github.com/redfin/insist/pkg/patience"
	"github.com/redfin/insist/pkg/validate"
	"github.com/redfin/insist/pkg/zerokit"
)

const (
	ErrInvalidArgument errorkit.Error = "invalid argument"
	ErrNilSignal       errorkit.Error = "signal function returned nil"
)

// MessageFunc supplies the custom message prefix of a failure.
// It is only called when a failure is reported.
// An empty result means there is no custom message.
type MessageFunc func() string

// Executable is a probe which reports its outcome as an error.
type Executable func() error

func noMessage() string { return "" }

// Factory is the entry point to build evaluators.
// It is an immutable value, every With... method returns a new Factory.
type Factory struct {
	message  MessageFunc
	reporter Reporter
	helper   func()
}

// New creates a Factory with the given message source and failure reporter.
func New(message MessageFunc, reporter Reporter) Factory {
	if message == nil {
		panic(ErrInvalidArgument.F("message function is nil"))
	}
	if zerokit.IsNil(reporter) {
		panic(ErrInvalidArgument.F("reporter is nil"))
	}
	return Factory{message: message, reporter: reporter, helper: noHelper}
}

func noHelper() {}

// Assertion returns a Factory which fails the test when a condition is not met in time.
func Assertion(tb testing.TB) Factory {
	return runnerFactory(tb, AssertionFailed, DefaultFailureMessage)
}

// Assumption returns a Factory which skips the test when a condition is not met in time.
func Assumption(tb testing.TB) Factory {
	return runnerFactory(tb, TestAborted, DefaultAbortMessage)
}

// runnerFactory marks every library frame between the caller and tb.Fatal as a test helper,
// so the test runner reports the failure at the caller's line.
func runnerFactory(tb testing.TB, signal SignalFunc, defaultMessage string) Factory {
	if tb == nil {
		panic(ErrInvalidArgument.F("testing.TB is nil"))
	}
	f := New(noMessage, TrimmingReporter{
		Signal:         signal,
		Raise:          RaiseTB(tb),
		DefaultMessage: defaultMessage,
		Helper:         tb.Helper,
	})
	f.helper = tb.Helper
	return f
}

// WithMessage returns a copy of the Factory whose failures are prefixed with msg.
func (f Factory) WithMessage(msg string) Factory {
	return f.WithMessageFunc(func() string { return msg })
}

// WithMessageFunc returns a copy of the Factory whose failure prefix is supplied lazily by fn.
func (f Factory) WithMessageFunc(fn MessageFunc) Factory {
	n := New(fn, f.reporter)
	n.helper = f.helper
	return n
}

// WithWait returns a time budget evaluator which uses the given wait.
// The default budget of the evaluator is the Timeout of the wait.
func (f Factory) WithWait(w patience.Wait) WaitFuture {
	f.check()
	must.Nil(invalidArgument(validate.Value(w)))
	return WaitFuture{evaluator: f.evaluator(), wait: w}
}

// WithRetry returns a count budget evaluator which uses the given retry.
// The default budget of the evaluator is the Retries of the retry.
func (f Factory) WithRetry(r patience.Retry) RetryFuture {
	f.check()
	must.Nil(invalidArgument(validate.Value(r)))
	return RetryFuture{evaluator: f.evaluator(), retry: r}
}

// Within returns an evaluator which keeps polling for the given duration.
func (f Factory) Within(d time.Duration) Future {
	return f.WithWait(DefaultWait()).Within(d)
}

// WithinRetries returns an evaluator which makes at most n+1 attempts.
func (f Factory) WithinRetries(n int) Future {
	return f.WithRetry(DefaultRetry()).Within(n)
}

// Throws checks that fn fails with an error of the given kind on its first and only attempt.
func (f Factory) Throws(kind ErrorKind, fn Executable) error {
	f.check()
	f.helper()
	return f.WithinRetries(0).ThatEventuallyErrors(kind, fn)
}

func invalidArgument(err error) error {
	if err == nil {
		return nil
	}
	return ErrInvalidArgument.Wrap(err)
}

func (f Factory) check() {
	if f.message == nil || zerokit.IsNil(f.reporter) || f.helper == nil {
		panic(ErrInvalidArgument.F("uninitialised Factory, use insist.New"))
	}
}

func (f Factory) evaluator() evaluator {
	return evaluator{message: f.message, reporter: f.reporter, helper: f.helper}
}
