package insist_test

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/redfin/insist/pkg/patience"
)

// TBDouble records how a failure was raised, and stops the goroutine the way testing.T does.
type TBDouble struct {
	testing.TB
	Fatals []string
	Skips  []string
	Errors []string
	// ReportedAt is the "file:line" of the last failure,
	// resolved like testing.T does, by skipping the functions marked with Helper.
	ReportedAt string

	helpers map[string]struct{}
}

func (tb *TBDouble) Helper() {
	var pc [1]uintptr
	if runtime.Callers(2, pc[:]) == 0 {
		return
	}
	frame, _ := runtime.CallersFrames(pc[:]).Next()
	if tb.helpers == nil {
		tb.helpers = make(map[string]struct{})
	}
	tb.helpers[frame.Function] = struct{}{}
}

func (tb *TBDouble) Fatal(args ...any) {
	tb.report()
	tb.Fatals = append(tb.Fatals, fmt.Sprint(args...))
	runtime.Goexit()
}

func (tb *TBDouble) Skip(args ...any) {
	tb.report()
	tb.Skips = append(tb.Skips, fmt.Sprint(args...))
	runtime.Goexit()
}

func (tb *TBDouble) Error(args ...any) {
	tb.report()
	tb.Errors = append(tb.Errors, fmt.Sprint(args...))
}

func (tb *TBDouble) report() {
	pcs := make([]uintptr, 64)
	// skip runtime.Callers, report and the Fatal/Skip/Error method
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if _, ok := tb.helpers[frame.Function]; !ok {
			tb.ReportedAt = fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
			return
		}
		if !more {
			return
		}
	}
}

var fastOptions = patience.Options{Backoff: patience.FixedDelay{Delay: time.Millisecond}}

func fastWait(timeout time.Duration) patience.Wait {
	return patience.Wait{Options: fastOptions, Timeout: timeout}
}

func fastRetry(retries int) patience.Retry {
	return patience.Retry{Options: fastOptions, Retries: retries}
}

// Probe counts its invocations, and succeeds from the given attempt on.
// A zero SucceedAt never succeeds.
type Probe struct {
	Calls     int
	SucceedAt int
}

func (p *Probe) Bool() bool {
	p.Calls++
	return p.SucceedAt != 0 && p.SucceedAt <= p.Calls
}

func catchPanic(blk func()) (out any) {
	defer func() { out = recover() }()
	blk()
	return nil
}
