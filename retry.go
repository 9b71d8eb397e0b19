package insist

import (
	"github.com/redfin/insist/pkg/patience"
)

var _ Future = RetryFuture{}

// RetryFuture is an evaluator with a count budget.
// The number of attempts is exactly the number of retries plus one,
// no matter how long the probe runs.
type RetryFuture struct {
	evaluator
	retry patience.Retry
}

// Within returns a copy of the RetryFuture with the given number of retries.
// Zero retries means a single attempt.
func (f RetryFuture) Within(retries int) RetryFuture {
	if retries < 0 {
		panic(ErrInvalidArgument.F("negative retry count: %d", retries))
	}
	f.retry.Retries = retries
	return f
}

// Retries is the count budget of the evaluator.
func (f RetryFuture) Retries() int { return f.retry.Retries }

// ThatEventually polls the probe until it returns true, within the count budget.
func (f RetryFuture) ThatEventually(probe func() bool) {
	f.check()
	f.helper()
	f.thatEventually(f.retry, probe)
}

// ThatEventuallyIsPresent polls the probe until it reports a present value, within the count budget.
func (f RetryFuture) ThatEventuallyIsPresent(probe func() (any, bool)) {
	f.check()
	f.helper()
	f.thatEventuallyIsPresent(f.retry, probe)
}

// ThatEventuallyIsNotNil polls the probe until it returns a non nil value, within the count budget.
func (f RetryFuture) ThatEventuallyIsNotNil(probe func() any) {
	f.check()
	f.helper()
	f.thatEventuallyIsNotNil(f.retry, probe)
}

// ThatEventuallyErrors polls fn until it fails with an error of the given kind, within the count budget.
func (f RetryFuture) ThatEventuallyErrors(kind ErrorKind, fn Executable) error {
	f.check()
	f.helper()
	return f.thatEventuallyErrors(f.retry, kind, fn)
}
