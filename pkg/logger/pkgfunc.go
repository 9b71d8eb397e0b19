package logger

import "context"

// Default is the logger behind the package level functions.
var Default Logger

func Debug(ctx context.Context, msg string, ds ...Detail) { Default.Debug(ctx, msg, ds...) }

func Warn(ctx context.Context, msg string, ds ...Detail) { Default.Warn(ctx, msg, ds...) }
