package logger

import "context"

type ctxKeyDetails struct{}

// ContextWith returns a context which carries the given details on top of the ones already attached.
// Entries logged with the returned context include all of them,
// and details added later override earlier ones with the same key.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(ds) == 0 {
		return ctx
	}
	entry := getLoggingDetailsFromContext(ctx)
	for _, d := range ds {
		if d != nil {
			d.addTo(entry)
		}
	}
	return context.WithValue(ctx, ctxKeyDetails{}, entry)
}

// getLoggingDetailsFromContext returns a fresh copy of the details of ctx,
// so the caller can extend it without affecting the context.
func getLoggingDetailsFromContext(ctx context.Context) logEntry {
	out := make(logEntry)
	if ctx == nil {
		return out
	}
	if attached, ok := ctx.Value(ctxKeyDetails{}).(logEntry); ok {
		out.Merge(attached)
	}
	return out
}
