// Package patience implements a polling engine which keeps probing a condition
// until it is satisfied or the budget of the poller is exhausted.
//
// There are two kinds of budget:
//   - Wait limits the elapsed time of the polling.
//   - Retry limits the number of attempts and never consults the clock.
//
// Both of them make the first attempt right away, unless an Options.InitialDelay is set.
package patience

import (
	"context"
	"fmt"
	"time"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/logger"
	"github.com/redfin/insist/pkg/validate"
	"go.llib.dev/testcase/clock"
)

// Probe is a single attempt of a polling.
// When ok is true, the polling is done and value is the result of the Poll.
type Probe func() (value any, ok bool)

// Poller is the common interface of the budgets.
type Poller interface {
	Poll(ctx context.Context, probe Probe) (any, error)
}

// Options are the settings shared by every kind of budget.
type Options struct {
	// InitialDelay is waited before the first attempt.
	//
	// Default: no delay
	InitialDelay time.Duration
	// Backoff tells how much to wait between two attempts.
	//
	// Default: FixedDelay with its default delay
	Backoff Backoff
	// ExecutionHandler runs the probe for each attempt.
	//
	// Default: Propagating
	ExecutionHandler ExecutionHandler
}

const ErrNegativeDuration errorkit.Error = "negative duration"

// Validate checks the InitialDelay, and the Backoff when it implements validate.Validator.
func (o Options) Validate() error {
	if o.InitialDelay < 0 {
		return ErrNegativeDuration.F("initial delay: %s", o.InitialDelay)
	}
	if v, ok := o.Backoff.(validate.Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) getBackoff() Backoff {
	if o.Backoff == nil {
		return FixedDelay{}
	}
	return o.Backoff
}

func (o Options) getExecutionHandler() ExecutionHandler {
	if o.ExecutionHandler == nil {
		return Propagating{}
	}
	return o.ExecutionHandler
}

// ErrTimeout is matched by every TimeoutError with errors.Is.
const ErrTimeout errorkit.Error = "timeout reached"

// TimeoutError is returned when the budget is exhausted without a successful attempt.
type TimeoutError struct {
	Attempts int
}

func (err *TimeoutError) Error() string {
	return fmt.Sprintf("Timeout reached after %d unsuccessful attempt(s)", err.Attempts)
}

func (err *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// nextFunc decides whether there is budget left after the given number of failed attempts,
// and how long to wait before the next one when the backoff suggests delay.
type nextFunc func(failureCount FailureCount, delay time.Duration) (time.Duration, bool)

// poll attaches the budget to the logging context of the polling.
func poll(ctx context.Context, opts Options, budget logger.Fields, probe Probe, next nextFunc) (any, error) {
	ctx = logger.ContextWith(ctx, logger.Field("budget", budget))
	startedAt := clock.Now()
	if err := sleep(ctx, opts.InitialDelay); err != nil {
		return nil, err
	}
	var (
		handler  = opts.getExecutionHandler()
		backoff  = opts.getBackoff()
		attempts int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attempts++
		if value, ok := handler.Execute(ctx, probe); ok {
			return value, nil
		}
		delay, ok := next(attempts, backoff.WaitTime(attempts))
		if !ok {
			logger.Debug(ctx, "patience exhausted",
				logger.Field("attempts", attempts),
				logger.LazyDetail(func() logger.Detail {
					return logger.Field("elapsed", clock.Since(startedAt))
				}))
			return nil, &TimeoutError{Attempts: attempts}
		}
		logger.Debug(ctx, "unsuccessful attempt",
			logger.Field("attempt", attempts),
			logger.Field("delay", delay))
		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(d):
		return nil
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
