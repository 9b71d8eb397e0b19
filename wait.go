package insist

import (
	"time"

	"github.com/redfin/insist/pkg/patience"
)

var _ Future = WaitFuture{}

// WaitFuture is an evaluator with a time budget.
type WaitFuture struct {
	evaluator
	wait patience.Wait
}

// Within returns a copy of the WaitFuture with the given time budget.
// A zero duration means a single attempt.
func (f WaitFuture) Within(d time.Duration) WaitFuture {
	if d < 0 {
		panic(ErrInvalidArgument.F("negative duration: %s", d))
	}
	f.wait.Timeout = d
	return f
}

// Timeout is the time budget of the evaluator.
func (f WaitFuture) Timeout() time.Duration { return f.wait.Timeout }

// ThatEventually polls the probe until it returns true, within the time budget.
func (f WaitFuture) ThatEventually(probe func() bool) {
	f.check()
	f.helper()
	f.thatEventually(f.wait, probe)
}

// ThatEventuallyIsPresent polls the probe until it reports a present value, within the time budget.
func (f WaitFuture) ThatEventuallyIsPresent(probe func() (any, bool)) {
	f.check()
	f.helper()
	f.thatEventuallyIsPresent(f.wait, probe)
}

// ThatEventuallyIsNotNil polls the probe until it returns a non nil value, within the time budget.
func (f WaitFuture) ThatEventuallyIsNotNil(probe func() any) {
	f.check()
	f.helper()
	f.thatEventuallyIsNotNil(f.wait, probe)
}

// ThatEventuallyErrors polls fn until it fails with an error of the given kind, within the time budget.
func (f WaitFuture) ThatEventuallyErrors(kind ErrorKind, fn Executable) error {
	f.check()
	f.helper()
	return f.thatEventuallyErrors(f.wait, kind, fn)
}
