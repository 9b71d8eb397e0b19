// Package runtimekit captures call stacks and interprets the function names found in them.
package runtimekit

import (
	"runtime"
	"strings"
)

const maxStackDepth = 1024

// Stack returns the call stack of the calling goroutine in innermost-first order.
// The first frame is the function which called Stack.
func Stack() []runtime.Frame {
	return callers(3)
}

func callers(skip int) []runtime.Frame {
	programCounters := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, programCounters)
	frames := runtime.CallersFrames(programCounters[:n])
	var vs []runtime.Frame
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		if frame.Function == "" && frame.File == "" {
			continue
		}
		vs = append(vs, frame)
	}
	return vs
}

// FuncInfo is the parsed form of a fully qualified function name,
// as it appears in runtime.Frame.Function.
type FuncInfo struct {
	// Import is the import path of the package, e.g. "github.com/redfin/insist/pkg/runtimekit".
	Import string
	// Package is the last element of the import path.
	Package string
	// Symbol is the remaining part of the name, e.g. "(*Wait).Poll.func1".
	Symbol string
}

// FuncInfoOf parses a fully qualified function name.
//
//	"github.com/redfin/insist.WaitFuture.ThatEventually"
//	"github.com/redfin/insist/pkg/patience.(*Wait).Poll.func1"
//
// Import paths with a dot in their last element (gopkg.in/yaml.v3) can't be told apart
// from the symbol, these resolve to the part before the first dot.
func FuncInfoOf(name string) FuncInfo {
	var (
		lastSlash = strings.LastIndex(name, "/")
		rest      = name[lastSlash+1:]
		dot       = strings.Index(rest, ".")
	)
	if dot < 0 {
		return FuncInfo{Import: name, Package: rest}
	}
	return FuncInfo{
		Import:  name[:lastSlash+1+dot],
		Package: rest[:dot],
		Symbol:  rest[dot+1:],
	}
}

// IsTestPackage reports whether the import path belongs to an external test package.
func (fi FuncInfo) IsTestPackage() bool {
	return strings.HasSuffix(fi.Package, "_test")
}
