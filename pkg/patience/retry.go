package patience

import (
	"context"
	"time"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/logger"
	"github.com/redfin/insist/pkg/validate"
)

var _ Poller = Retry{}

// Retry is a count budget.
//
// Retry makes at most Retries+1 attempts,
// and the decision to stop is made without looking at the clock.
type Retry struct {
	Options
	// Retries is the number of attempts allowed after the first one.
	Retries int
}

const ErrNegativeRetries errorkit.Error = "negative retry count"

func (r Retry) Validate() error {
	if r.Retries < 0 {
		return ErrNegativeRetries.F("retries: %d", r.Retries)
	}
	return r.Options.Validate()
}

func (r Retry) Poll(ctx context.Context, probe Probe) (any, error) {
	if err := validate.Value(r); err != nil {
		return nil, err
	}
	budget := logger.Fields{"kind": "count", "retries": r.Retries}
	return poll(ctx, r.Options, budget, probe, func(failureCount FailureCount, delay time.Duration) (time.Duration, bool) {
		return delay, failureCount <= r.Retries
	})
}
