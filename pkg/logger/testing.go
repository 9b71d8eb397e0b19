package logger

import (
	"bytes"
	"sync"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
// The stubbed logger logs on every level.
func Stub(tb testingTB) *Buffer {
	tb.Helper()
	ogOut, ogLevel := Default.Out, Default.Level
	buf := &Buffer{}
	Default.Out = buf
	Default.Level = LevelDebug
	tb.Cleanup(func() {
		Default.Out = ogOut
		Default.Level = ogLevel
	})
	return buf
}

// Buffer is a concurrency safe bytes.Buffer.
type Buffer struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.String()
}
