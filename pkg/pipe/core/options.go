package core

import "context"

type OptionKey string

const (
	ObserverOptionKey OptionKey = "observer_options"
	SourceOptionKey   OptionKey = "source_options"
)

type ObserverOptions struct {
	Observer Observer
}

type SourceOptions struct {
	Name string
}

// WithObserver installs obs for every chain started from ctx.
func WithObserver(ctx context.Context, obs Observer) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, ObserverOptions{Observer: obs})
}

// WithSource names the code that runs the chain; it is reported as Event.Source.
func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, SourceOptionKey, SourceOptions{Name: name})
}

// ObserverFrom returns the installed observer, or a NoOpObserver.
func ObserverFrom(ctx context.Context) Observer {
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	if ok && options.Observer != nil {
		return options.Observer
	}
	return NoOpObserver{}
}

// HasObserver reports whether an observer other than the default was installed.
func HasObserver(ctx context.Context) bool {
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	return ok && options.Observer != nil
}

func SourceFrom(ctx context.Context, defaultName string) string {
	options, ok := ctx.Value(SourceOptionKey).(SourceOptions)
	if ok {
		return options.Name
	}
	return defaultName
}
