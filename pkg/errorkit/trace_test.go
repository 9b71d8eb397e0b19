package errorkit_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/redfin/insist/pkg/errorkit"
	"github.com/stretchr/testify/require"
)

func TestWithStack(t *testing.T) {
	frame := runtime.Frame{Function: "example.com/pkg.Func", File: "/src/pkg/file.go", Line: 42}

	t.Run("nil error stays nil", func(t *testing.T) {
		require.Nil(t, errorkit.WithStack(nil, []runtime.Frame{frame}))
	})

	t.Run("stack is attached and the error stays reachable", func(t *testing.T) {
		base := errors.New("boom")
		got := errorkit.WithStack(base, []runtime.Frame{frame})
		require.True(t, errors.Is(got, base))

		var traced errorkit.TracedError
		require.True(t, errors.As(got, &traced))
		require.Equal(t, []runtime.Frame{frame}, traced.Stack)
		require.Equal(t, "boom\n\nexample.com/pkg.Func\n\t/src/pkg/file.go:42", got.Error())
	})

	t.Run("already traced error keeps the original stack", func(t *testing.T) {
		base := errorkit.WithStack(errors.New("boom"), []runtime.Frame{frame})
		got := errorkit.WithStack(fmt.Errorf("wrap: %w", base), nil)

		var traced errorkit.TracedError
		require.True(t, errors.As(got, &traced))
		require.Len(t, traced.Stack, 1)
	})

	t.Run("the passed frames are copied", func(t *testing.T) {
		frames := []runtime.Frame{frame}
		got := errorkit.WithStack(errors.New("boom"), frames)
		frames[0].Line = 7

		var traced errorkit.TracedError
		require.True(t, errors.As(got, &traced))
		require.Equal(t, 42, traced.Stack[0].Line)
	})

	t.Run("empty stack renders only the message", func(t *testing.T) {
		got := errorkit.WithStack(errors.New("boom"), nil)
		require.Equal(t, "boom", got.Error())
	})
}
