package patience

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/redfin/insist/pkg/validate"
	"github.com/redfin/insist/pkg/zerokit"
)

// Backoff tells how long to wait after the given number of failed attempts.
type Backoff interface {
	WaitTime(failureCount FailureCount) time.Duration
}

type FailureCount = int

// DefaultDelay is the delay used by the backoff strategies when no delay is configured.
const DefaultDelay = 500 * time.Millisecond

var (
	_ Backoff            = FixedDelay{}
	_ validate.Validator = FixedDelay{}
)

// FixedDelay waits the same amount of time between every attempt.
type FixedDelay struct {
	// Delay is the time waited between two attempts.
	//
	// Default: DefaultDelay
	Delay time.Duration
}

func (fd FixedDelay) Validate() error {
	if fd.Delay < 0 {
		return ErrNegativeDuration.F("fixed delay: %s", fd.Delay)
	}
	return nil
}

func (fd FixedDelay) WaitTime(FailureCount) time.Duration {
	return zerokit.Coalesce(fd.Delay, DefaultDelay)
}

var (
	_ Backoff            = ExponentialBackoff{}
	_ validate.Validator = ExponentialBackoff{}
)

// ExponentialBackoff doubles the waiting time after each failed attempt.
type ExponentialBackoff struct {
	// Delay is the wait time after the first failed attempt.
	//
	// Default: DefaultDelay
	Delay time.Duration
	// Max caps the calculated wait time.
	//
	// Default: no cap
	Max time.Duration
}

func (eb ExponentialBackoff) Validate() error {
	if eb.Delay < 0 {
		return ErrNegativeDuration.F("exponential backoff delay: %s", eb.Delay)
	}
	if eb.Max < 0 {
		return ErrNegativeDuration.F("exponential backoff max: %s", eb.Max)
	}
	return nil
}

func (eb ExponentialBackoff) WaitTime(failureCount FailureCount) time.Duration {
	var (
		base = zerokit.Coalesce(eb.Delay, DefaultDelay)
		exp  = math.Max(float64(failureCount-1), 0)
		wait = float64(base) * math.Pow(2, exp)
	)
	d := time.Duration(math.MaxInt64)
	if wait < float64(math.MaxInt64) {
		d = time.Duration(wait)
	}
	if 0 < eb.Max && eb.Max < d {
		return eb.Max
	}
	return d
}

var (
	_ Backoff            = Jitter{}
	_ validate.Validator = Jitter{}
)

// Jitter waits a random amount of time between zero and Delay.
type Jitter struct {
	// Delay is the maximum time waited between two attempts.
	//
	// Default: DefaultDelay
	Delay time.Duration
}

var (
	jitterMutex  sync.Mutex
	jitterRandom = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func (j Jitter) Validate() error {
	if j.Delay < 0 {
		return ErrNegativeDuration.F("jitter delay: %s", j.Delay)
	}
	return nil
}

func (j Jitter) WaitTime(FailureCount) time.Duration {
	upper := int64(zerokit.Coalesce(j.Delay, DefaultDelay))
	if upper < 0 {
		return 0
	}
	// Int63n takes an exclusive bound
	if upper < math.MaxInt64 {
		upper++
	}
	jitterMutex.Lock()
	defer jitterMutex.Unlock()
	return time.Duration(jitterRandom.Int63n(upper))
}
