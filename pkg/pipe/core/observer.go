package core

import (
	"context"
	"log/slog"
	"time"
)

// Level is the severity of a chain event. Values follow the OpenTelemetry
// SeverityNumber ranges so events can be forwarded without translation.
type Level int

const (
	LevelVerbose Level = 5
	LevelInfo    Level = 9
	LevelWarning Level = 13
	LevelError   Level = 17
)

var severities = []struct {
	upTo Level
	text string
	slog slog.Level
}{
	{8, "DEBUG", slog.LevelDebug},
	{12, "INFO", slog.LevelInfo},
	{16, "WARN", slog.LevelWarn},
}

func (l Level) severity() (string, slog.Level) {
	for _, s := range severities {
		if l <= s.upTo {
			return s.text, s.slog
		}
	}
	return "ERROR", slog.LevelError
}

// String returns the OpenTelemetry severity text.
func (l Level) String() string {
	text, _ := l.severity()
	return text
}

func (l Level) SlogLevel() slog.Level {
	_, level := l.severity()
	return level
}

type EventType string

const (
	EventStepSkipped   EventType = "chain.step.skipped"
	EventStepFailed    EventType = "chain.step.failed"
	EventRequireFailed EventType = "chain.require.failed"
	EventEnd           EventType = "chain.end"
)

// Event describes one link of a chain that was skipped, failed or ended it.
// Data holds chain_id, step, state and, for failures, error.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives chain events. Implementations must not retain Data.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event Event) {
	f(ctx, event)
}

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

// MultiObserver hands every event to each of its observers in order.
type MultiObserver []Observer

// NewMultiObserver skips nil observers.
func NewMultiObserver(observers ...Observer) MultiObserver {
	multi := make(MultiObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			multi = append(multi, obs)
		}
	}
	return multi
}

func (m MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m {
		obs.OnEvent(ctx, event)
	}
}
