package insist

import (
	"fmt"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/tracekit"
	"github.com/redfin/insist/pkg/zerokit"
)

// Reporter is notified when a condition is not met within its budget.
type Reporter interface {
	Fail(expected string, subject any, message string)
}

// CauseReporter is a Reporter which also receives the error that ended the polling.
type CauseReporter interface {
	Reporter
	FailWithCause(expected string, subject any, message string, cause error)
}

// Messages used when a failure has no custom message.
const (
	DefaultFailureMessage = "Insistence failure"
	DefaultAbortMessage   = "Test aborted"
)

const failureFormat = "%s\n    expected : %s\n     subject : <%s>"

var _ CauseReporter = TrimmingReporter{}

// TrimmingReporter raises a Signal whose stack is trimmed to the single frame of the caller.
// The frames of this module and of the assertion library are left out.
type TrimmingReporter struct {
	// Signal builds the raised error.
	Signal SignalFunc
	// Raise is called with the traced signal.
	//
	// Default: RaisePanic
	Raise Raiser
	// DefaultMessage is used when the message of the failure is empty.
	//
	// Default: DefaultFailureMessage
	DefaultMessage string
	// Helper, when set, is called to mark the reporting frames as test helpers.
	Helper func()
}

// Fail raises the failure signal through Raise.
func (r TrimmingReporter) Fail(expected string, subject any, message string) {
	if r.Helper != nil {
		r.Helper()
	}
	r.FailWithCause(expected, subject, message, nil)
}

// FailWithCause raises the failure signal through Raise.
// A non nil cause stays reachable from the raised error with errors.Is and errors.As.
func (r TrimmingReporter) FailWithCause(expected string, subject any, message string, cause error) {
	if r.Helper != nil {
		r.Helper()
	}
	if expected == "" {
		panic(ErrInvalidArgument.F("expected description is empty"))
	}
	if r.Signal == nil {
		panic(ErrInvalidArgument.F("signal function is nil"))
	}
	message = zerokit.Coalesce(message, r.DefaultMessage, DefaultFailureMessage)
	signal := r.Signal(fmt.Sprintf(failureFormat, message, expected, describe(subject)))
	if zerokit.IsNil(signal) {
		panic(ErrNilSignal)
	}
	if cause != nil {
		signal = WithCause(signal, cause)
	}
	r.raiser()(errorkit.WithStack(signal, tracekit.Caller().Frames()))
}

func (r TrimmingReporter) raiser() Raiser {
	if r.Raise == nil {
		return RaisePanic
	}
	return r.Raise
}

// SoftReporter records the failure on the test, and lets the test continue.
type SoftReporter struct {
	TB interface {
		Helper()
		Error(args ...any)
	}
}

// Fail records the failure with TB.Error.
func (r SoftReporter) Fail(expected string, subject any, message string) {
	if zerokit.IsNil(r.TB) {
		panic(ErrInvalidArgument.F("SoftReporter.TB is nil"))
	}
	if expected == "" {
		panic(ErrInvalidArgument.F("expected description is empty"))
	}
	r.TB.Helper()
	message = zerokit.Coalesce(message, DefaultFailureMessage)
	r.TB.Error(fmt.Sprintf(failureFormat, message, expected, describe(subject)))
}

// describe renders the subject of a failure.
// fmt recovers the panics of String and Error methods, so describe never panics.
func describe(subject any) string {
	if zerokit.IsNil(subject) {
		return "null"
	}
	return fmt.Sprintf("%v", subject)
}
