package insist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/patience"
	"github.com/redfin/insist/pkg/zerokit"
)

// Future is a configured evaluator waiting for a probe.
//
// A probe of ThatEventually, ThatEventuallyIsPresent or ThatEventuallyIsNotNil
// that panics aborts the polling, and the panic is propagated.
// ThatEventuallyErrors on the other hand treats every unexpected error or panic as a failed attempt.
type Future interface {
	// ThatEventually polls the probe until it returns true.
	ThatEventually(probe func() bool)
	// ThatEventuallyIsPresent polls the probe until it reports a present value.
	ThatEventuallyIsPresent(probe func() (any, bool))
	// ThatEventuallyIsNotNil polls the probe until it returns a non nil value.
	ThatEventuallyIsNotNil(probe func() any)
	// ThatEventuallyErrors polls fn until it fails with an error of the expected kind,
	// and returns the matching error.
	// It returns nil when the failure is reported by a Reporter which does not stop the test.
	ThatEventuallyErrors(kind ErrorKind, fn Executable) error
}

const (
	timeoutFormat       = "Timeout reached after %d unsuccessful attempt(s)"
	customTimeoutFormat = "%s : " + timeoutFormat
)

type evaluator struct {
	message  MessageFunc
	reporter Reporter
	// helper marks the calling frame as a test helper.
	helper func()
}

type helperMarker interface{ helperFunc() func() }

func (e evaluator) helperFunc() func() { return e.helper }

func (e evaluator) check() {
	if e.message == nil || zerokit.IsNil(e.reporter) || e.helper == nil {
		panic(ErrInvalidArgument.F("uninitialised evaluator, use a Factory to build it"))
	}
}

func (e evaluator) thatEventually(poller patience.Poller, probe func() bool) {
	e.check()
	e.helper()
	if probe == nil {
		panic(ErrInvalidArgument.F("probe is nil"))
	}
	_, err := poller.Poll(context.Background(), func() (any, bool) {
		return nil, probe()
	})
	if err != nil {
		e.fail(err, "Eventually true", "always false")
	}
}

func (e evaluator) thatEventuallyIsPresent(poller patience.Poller, probe func() (any, bool)) {
	e.check()
	e.helper()
	if probe == nil {
		panic(ErrInvalidArgument.F("probe is nil"))
	}
	e.thatEventually(poller, func() bool {
		_, ok := probe()
		return ok
	})
}

func (e evaluator) thatEventuallyIsNotNil(poller patience.Poller, probe func() any) {
	e.check()
	e.helper()
	if probe == nil {
		panic(ErrInvalidArgument.F("probe is nil"))
	}
	e.thatEventually(poller, func() bool {
		return !zerokit.IsNil(probe())
	})
}

func (e evaluator) thatEventuallyErrors(poller patience.Poller, kind ErrorKind, fn Executable) error {
	e.check()
	e.helper()
	if zerokit.IsNil(kind) {
		panic(ErrInvalidArgument.F("error kind is nil"))
	}
	if fn == nil {
		panic(ErrInvalidArgument.F("executable is nil"))
	}
	caught, err := poller.Poll(context.Background(), func() (any, bool) {
		err := errorkit.Recover(fn)
		if err == nil {
			return nil, false
		}
		matched, ok := kind.Match(err)
		return matched, ok
	})
	if err != nil {
		e.fail(err, fmt.Sprintf("Expected to catch error '%s'", kind.Name()), "not caught")
		return nil
	}
	matched, _ := caught.(error)
	return matched
}

func (e evaluator) fail(err error, expected string, subject any) {
	e.helper()
	var timeout *patience.TimeoutError
	if !errors.As(err, &timeout) {
		panic(err)
	}
	message := e.timeoutMessage(timeout.Attempts)
	if r, ok := e.reporter.(CauseReporter); ok {
		r.FailWithCause(expected, subject, message, err)
		return
	}
	e.reporter.Fail(expected, subject, message)
}

func (e evaluator) timeoutMessage(attempts int) string {
	if msg := e.message(); msg != "" {
		return fmt.Sprintf(customTimeoutFormat, msg, attempts)
	}
	return fmt.Sprintf(timeoutFormat, attempts)
}
