package logger

import (
	"strings"

	"github.com/redfin/insist/pkg/env"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

func (ll Level) String() string { return string(ll) }

// Enables reports whether an entry of the given level passes a logger set to ll.
func (ll Level) Enables(entry Level) bool {
	return ll.rank() <= entry.rank()
}

func (ll Level) rank() int {
	switch ll {
	case LevelDebug:
		return 0
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	case LevelFatal:
		return 4
	default:
		return 1
	}
}

// ParseLevel accepts the level names, "critical" and the first letter of each.
func ParseLevel(raw string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "d":
		return LevelDebug, true
	case "info", "i":
		return LevelInfo, true
	case "warn", "w":
		return LevelWarn, true
	case "error", "e":
		return LevelError, true
	case "fatal", "f", "critical", "c":
		return LevelFatal, true
	default:
		return "", false
	}
}

var defaultLevel = levelFromEnv()

// levelFromEnv reads the first valid level from the supported environment variables.
func levelFromEnv() Level {
	for _, key := range []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"} {
		raw, ok, err := env.Lookup[string](key)
		if err != nil || !ok {
			continue
		}
		if level, ok := ParseLevel(raw); ok {
			return level
		}
	}
	return LevelInfo
}
