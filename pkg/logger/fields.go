package logger

import (
	"fmt"
	"time"
)

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface{ addTo(logEntry) }

type logEntry map[string]any

func (le logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		le[k] = v
	}
	return le
}

// Field creates a single key value pair based logging detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e logEntry) {
	e[f.Key] = toFieldValue(f.Value)
}

// Fields is a collection of field that you can add to your logging record.
type Fields map[string]any

func (fields Fields) addTo(e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

// ErrField adds an error to the log entry under the "error" key.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{
		"message": err.Error(),
		"type":    fmt.Sprintf("%T", err),
	})
}

// LazyDetail lets you add logging details that aren't evaluated until the log is actually created.
// This is useful for debug level details which take effort to calculate.
type LazyDetail func() Detail

func (fn LazyDetail) addTo(e logEntry) {
	if fn == nil {
		return
	}
	if d := fn(); d != nil {
		d.addTo(e)
	}
}

type nullDetail struct{}

func (nullDetail) addTo(logEntry) {}

func toFieldValue(val any) any {
	switch v := val.(type) {
	case Fields:
		vs := map[string]any{}
		for k, fv := range v {
			vs[k] = toFieldValue(fv)
		}
		return vs
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}
