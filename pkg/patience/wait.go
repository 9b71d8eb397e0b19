package patience

import (
	"context"
	"time"

	"github.com/redfin/insist/pkg/logger"
	"github.com/redfin/insist/pkg/validate"
	"go.llib.dev/testcase/clock"
)

var _ Poller = Wait{}

// Wait is a time budget.
//
// Wait keeps making attempts while the elapsed time is less than the Timeout.
// The delay between two attempts never exceeds the remaining budget.
// A zero Timeout means exactly one attempt.
type Wait struct {
	Options
	// Timeout is the total time budget of the polling.
	// The InitialDelay is part of the budget.
	Timeout time.Duration
}

func (w Wait) Validate() error {
	if w.Timeout < 0 {
		return ErrNegativeDuration.F("timeout: %s", w.Timeout)
	}
	return w.Options.Validate()
}

func (w Wait) Poll(ctx context.Context, probe Probe) (any, error) {
	if err := validate.Value(w); err != nil {
		return nil, err
	}
	startedAt := clock.Now()
	budget := logger.Fields{"kind": "time", "timeout": w.Timeout}
	return poll(ctx, w.Options, budget, probe, func(_ FailureCount, delay time.Duration) (time.Duration, bool) {
		remaining := w.Timeout - clock.Now().Sub(startedAt)
		if remaining <= 0 {
			return 0, false
		}
		return minDuration(delay, remaining), true
	})
}
