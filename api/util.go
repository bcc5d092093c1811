package api

import (
	"context"
	"log/slog"
)

// LevelTrace sits between info and warn so that traces can be turned on
// without debug noise.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a driver event at LevelTrace.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
