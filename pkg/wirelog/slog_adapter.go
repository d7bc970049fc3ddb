package wirelog

import (
	"context"
	"log/slog"
)

// SlogAdapter mirrors exchanges into an slog.Logger at Debug level.
// Useful in development when you want protocol traffic on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to the given logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the exchange to the slog logger.
func (a *SlogAdapter) Log(ex Exchange) {
	attrs := []slog.Attr{
		slog.String("request_id", ex.RequestID),
		slog.String("method", ex.Method),
		slog.String("path", ex.Path),
		slog.Duration("duration", ex.Duration),
	}
	if ex.Status != 0 {
		attrs = append(attrs, slog.Int("status", ex.Status))
	}
	if ex.Error != "" {
		attrs = append(attrs, slog.String("error", ex.Error))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "vtn exchange", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
