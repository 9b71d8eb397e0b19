package patience

import (
	"context"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/logger"
)

// ExecutionHandler runs a Probe for a single attempt.
type ExecutionHandler interface {
	Execute(ctx context.Context, probe Probe) (value any, ok bool)
}

// Propagating runs the probe as is, a panic in the probe aborts the polling.
type Propagating struct{}

func (Propagating) Execute(_ context.Context, probe Probe) (any, bool) {
	return probe()
}

// IgnoringPanics counts a panicking probe as an unsuccessful attempt.
type IgnoringPanics struct{}

func (IgnoringPanics) Execute(ctx context.Context, probe Probe) (value any, ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		logger.Debug(ctx, "probe panicked", logger.ErrField(errorkit.FromPanic(r)))
		value, ok = nil, false
	}()
	return probe()
}
