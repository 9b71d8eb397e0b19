package runtimekit_test

import (
	"runtime"
	"testing"

	"github.com/redfin/insist/pkg/runtimekit"
	"go.llib.dev/testcase/assert"
)

func TestStack(t *testing.T) {
	stack := runtimekit.Stack()

	assert.NotEmpty(t, stack)
	assert.Contain(t, stack[0].Function, "TestStack")
	assert.Contain(t, stack[0].File, "runtimekit_test.go")

	assert.NoneOf(t, stack, func(t testing.TB, frame runtime.Frame) {
		assert.Contain(t, frame.File, "runtimekit.go")
	}, "expected that runtimekit itself is not in the stack trace")

	stubFunc(func() {
		stack = runtimekit.Stack()
	})

	assert.Contain(t, stack[0].Function, "TestStack.func")
	assert.Contain(t, stack[1].Function, "runtimekit_test.stubFunc")
	assert.Contain(t, stack[2].Function, "TestStack")
}

// stubFunc
//
// DO NOT change the name of this function!
//
//go:noinline
func stubFunc(blk func()) { blk() }

func TestFuncInfoOf(t *testing.T) {
	type TC struct {
		Name string
		Exp  runtimekit.FuncInfo
	}
	for desc, tc := range map[string]TC{
		"func": {
			Name: "github.com/redfin/insist/pkg/runtimekit_test.stubFunc",
			Exp: runtimekit.FuncInfo{
				Import:  "github.com/redfin/insist/pkg/runtimekit_test",
				Package: "runtimekit_test",
				Symbol:  "stubFunc",
			},
		},
		"ptr-method closure": {
			Name: "github.com/redfin/insist/pkg/patience.(*Wait).Poll.func1",
			Exp: runtimekit.FuncInfo{
				Import:  "github.com/redfin/insist/pkg/patience",
				Package: "patience",
				Symbol:  "(*Wait).Poll.func1",
			},
		},
		"root package method": {
			Name: "github.com/redfin/insist.WaitFuture.ThatEventually",
			Exp: runtimekit.FuncInfo{
				Import:  "github.com/redfin/insist",
				Package: "insist",
				Symbol:  "WaitFuture.ThatEventually",
			},
		},
		"top level package without any import path": {
			Name: "testing.tRunner",
			Exp: runtimekit.FuncInfo{
				Import:  "testing",
				Package: "testing",
				Symbol:  "tRunner",
			},
		},
		"no symbol": {
			Name: "example.com/pkg",
			Exp:  runtimekit.FuncInfo{Import: "example.com/pkg", Package: "pkg"},
		},
		"empty": {},
	} {
		t.Run(desc, func(t *testing.T) {
			assert.Equal(t, tc.Exp, runtimekit.FuncInfoOf(tc.Name))
		})
	}
}

func TestFuncInfo_IsTestPackage(t *testing.T) {
	assert.True(t, runtimekit.FuncInfoOf("github.com/redfin/insist_test.TestX").IsTestPackage())
	assert.False(t, runtimekit.FuncInfoOf("github.com/redfin/insist.TestX").IsTestPackage())
}
