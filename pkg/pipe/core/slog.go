package core

import (
	"context"
	"log/slog"
)

// SlogObserver writes events to a slog.Logger. The event type is the message,
// the OpenTelemetry severity text goes to "severity" and Data entries become
// top-level attributes.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver uses slog.Default when logger is nil.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	attrs := make([]slog.Attr, 0, len(event.Data)+2)
	attrs = append(attrs,
		slog.String("source", event.Source),
		slog.String("severity", event.Level.String()))
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}

	o.logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}
