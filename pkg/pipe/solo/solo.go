package solo

import "github.com/ib-77/pipe/pkg/pipe"

// Next passes input to step and returns whatever step returns.
func Next[In, Out any](input In, step func(In) (Out, error)) (Out, error) {
	return step(input)
}

// NextOpt passes the unwrapped input to step if it is present. An absent input
// is forwarded as an absent output and step is not called.
func NextOpt[In, Out any](input pipe.Option[In], step func(In) (Out, error)) (pipe.Option[Out], error) {
	v, ok := input.Get()
	if !ok {
		return pipe.None[Out](), nil
	}

	out, err := step(v)
	if err != nil {
		return pipe.None[Out](), err
	}
	return pipe.Some(out), nil
}

func Map[In, Out any](input In, step func(In) Out) Out {
	return step(input)
}

// MapOpt is NextOpt for steps that cannot fail.
func MapOpt[In, Out any](input pipe.Option[In], step func(In) Out) pipe.Option[Out] {
	v, ok := input.Get()
	if !ok {
		return pipe.None[Out]()
	}
	return pipe.Some(step(v))
}

// Then is NextOpt for steps that may themselves produce absence.
func Then[In, Out any](input pipe.Option[In], step func(In) (pipe.Option[Out], error)) (pipe.Option[Out], error) {
	v, ok := input.Get()
	if !ok {
		return pipe.None[Out](), nil
	}

	out, err := step(v)
	if err != nil {
		return pipe.None[Out](), err
	}
	return out, nil
}

// End passes input to step and returns only its error.
// Typically the last step of a chain.
func End[T any](input T, step func(T) error) error {
	return step(input)
}

// EndOpt passes the unwrapped input to step if it is present, does nothing otherwise.
func EndOpt[T any](input pipe.Option[T], step func(T) error) error {
	v, ok := input.Get()
	if !ok {
		return nil
	}
	return step(v)
}

// Restart begins a new side-effect chain that takes no input.
func Restart(step func() error) error {
	return step()
}
