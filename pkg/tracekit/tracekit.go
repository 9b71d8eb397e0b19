// Package tracekit reduces a captured call stack to the single frame of the real caller.
//
// Frames of registered internal namespaces are considered noise.
// When a failure is reported from deep inside a fluent call chain,
// tracekit keeps only the frame right after the last internal one,
// so test output points at the line in the test that made the call.
package tracekit

import (
	"runtime"
	"strings"
	"sync"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/redfin/insist/pkg/runtimekit"
)

const (
	// ModuleNamespace is the import path of this module, all of its packages are internal.
	ModuleNamespace = "github.com/redfin/insist"
	// ExpressionNamespace is the validation expression library insist builds upon.
	ExpressionNamespace = "go.llib.dev/testcase/assert"
)

var registry = struct {
	mutex      sync.RWMutex
	index      int64
	namespaces map[int64]string
}{namespaces: map[int64]string{}}

var _ = RegisterInternal(ModuleNamespace)

var _ = RegisterInternal(ExpressionNamespace)

// RegisterInternal marks an import path and all of its sub packages as internal.
// The returned function removes the registration.
func RegisterInternal(importPath string) (unregister func()) {
	importPath = strings.TrimSuffix(importPath, "/")
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	registry.index++
	index := registry.index
	registry.namespaces[index] = importPath
	return func() {
		registry.mutex.Lock()
		defer registry.mutex.Unlock()
		delete(registry.namespaces, index)
	}
}

// IsInternal reports whether the frame originates from a registered internal namespace.
// External test packages (`_test` suffix) are caller code, even inside an internal namespace.
func IsInternal(frame runtime.Frame) bool {
	if frame.Function == "" {
		return false
	}
	info := runtimekit.FuncInfoOf(frame.Function)
	if info.IsTestPackage() {
		return false
	}
	registry.mutex.RLock()
	defer registry.mutex.RUnlock()
	for _, ns := range registry.namespaces {
		if info.Import == ns || strings.HasPrefix(info.Import, ns+"/") {
			return true
		}
	}
	return false
}

// Trace is an immutable, trimmed call stack.
// It holds either the caller frame or nothing.
type Trace struct {
	frames []runtime.Frame
}

// Frames returns a copy of the frames in the trace.
func (tr Trace) Frames() []runtime.Frame {
	return append([]runtime.Frame{}, tr.frames...)
}

// Caller returns the single frame of the trace.
func (tr Trace) Caller() (runtime.Frame, bool) {
	if len(tr.frames) == 0 {
		return runtime.Frame{}, false
	}
	return tr.frames[0], true
}

func (tr Trace) IsEmpty() bool { return len(tr.frames) == 0 }

func (tr Trace) String() string {
	var lines []string
	for _, frame := range tr.frames {
		lines = append(lines, errorkit.FrameString(frame))
	}
	return strings.Join(lines, "\n")
}

// Trim scans the stack in capture order and keeps the frame right after the last internal one.
// The result is empty when no internal frame is present or when the last frame itself is internal.
func Trim(stack []runtime.Frame) Trace {
	last := -1
	for i, frame := range stack {
		if IsInternal(frame) {
			last = i
		}
	}
	if last < 0 {
		return Trace{}
	}
	index := last + 1
	if len(stack) <= index {
		return Trace{}
	}
	return Trace{frames: []runtime.Frame{stack[index]}}
}

// Caller captures the current call stack and trims it to the caller of the internal call chain.
func Caller() Trace {
	return Trim(runtimekit.Stack())
}
