package audit

import (
	"context"
	"log/slog"
)

// Logger records who changed what. Every mutating service call emits exactly
// one event, after the change is committed.
type Logger interface {
	// Event logs a mutation performed by actorID against a target.
	Event(ctx context.Context, actorID uint, action, target string, attrs ...slog.Attr)
}

// SlogLogger writes audit events through a structured logger.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger.With("component", "audit")}
}

// Event implements Logger.Event.
func (l *SlogLogger) Event(ctx context.Context, actorID uint, action, target string, attrs ...slog.Attr) {
	base := []slog.Attr{
		slog.Uint64("actor_id", uint64(actorID)),
		slog.String("action", action),
		slog.String("target", target),
	}
	l.logger.LogAttrs(ctx, slog.LevelInfo, "audit", append(base, attrs...)...)
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// Event implements Logger.Event.
func (l *NoOpLogger) Event(ctx context.Context, actorID uint, action, target string, attrs ...slog.Attr) {
}
