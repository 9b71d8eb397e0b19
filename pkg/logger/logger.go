// Package logger writes structured JSON log lines.
//
// Logging details can be attached to a context with ContextWith,
// and every entry logged with that context carries them.
package logger

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/redfin/insist/pkg/zerokit"
	"go.llib.dev/testcase/clock"
)

type Logger struct {
	// Out is where the entries are written.
	//
	// Default: os.Stderr
	Out io.Writer
	// Level is the minimum level of the written entries.
	//
	// Default: the level from the environment, or LevelInfo
	Level Level
	// Separator is written after each entry.
	//
	// Default: the line separator of the operating system
	Separator string

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// MarshalFunc encodes an entry.
	//
	// Default: json.Marshal
	MarshalFunc func(any) ([]byte, error)

	mutex sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelFatal, msg, ds...)
}

// Log writes a single entry when the level is enabled.
// Write and encoding errors are dropped, logging never fails the caller.
func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if !zerokit.Coalesce(l.Level, defaultLevel).Enables(level) {
		return
	}
	entry := getLoggingDetailsFromContext(ctx)
	for _, d := range ds {
		if d != nil {
			d.addTo(entry)
		}
	}
	entry[zerokit.Coalesce(l.LevelKey, "level")] = level
	entry[zerokit.Coalesce(l.MessageKey, "message")] = msg
	entry[zerokit.Coalesce(l.TimestampKey, "timestamp")] = clock.Now().Format(time.RFC3339)

	data, err := l.marshal(entry)
	if err != nil {
		return
	}
	data = append(data, l.separator()...)

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.out().Write(data)
}

func (l *Logger) marshal(v any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc(v)
	}
	return json.Marshal(v)
}

func (l *Logger) out() io.Writer {
	if l.Out == nil {
		return os.Stderr
	}
	return l.Out
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
