package solo

import "github.com/ib-77/pipe/pkg/pipe"

// Require returns the value if present, err otherwise.
func Require[T any](input pipe.Option[T], err error) (T, error) {
	if v, ok := input.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, pipe.OrAbsent(err)
}

// RequirePtr is Require for a nullable pointer.
func RequirePtr[T any](input *T, err error) (T, error) {
	return Require(pipe.FromPtr(input), err)
}

// Check returns err when ok is false.
func Check(ok bool, err error) error {
	if !ok {
		return pipe.OrAbsent(err)
	}
	return nil
}

// RequireNotEmpty returns the collection if it is present and has at least one
// element. Present but empty fails the same way as absent.
func RequireNotEmpty[S ~[]E, E any](input pipe.Option[S], err error) (S, error) {
	if v, ok := input.Get(); ok && len(v) > 0 {
		return v, nil
	}
	return nil, pipe.OrAbsent(err)
}

// RequireSlice fails for nil and empty slices alike.
func RequireSlice[S ~[]E, E any](input S, err error) (S, error) {
	if len(input) == 0 {
		return nil, pipe.OrAbsent(err)
	}
	return input, nil
}

func RequireMapNotEmpty[M ~map[K]V, K comparable, V any](input pipe.Option[M], err error) (M, error) {
	if v, ok := input.Get(); ok && len(v) > 0 {
		return v, nil
	}
	return nil, pipe.OrAbsent(err)
}

func RequireText[S ~string](input pipe.Option[S], err error) (S, error) {
	if v, ok := input.Get(); ok && len(v) > 0 {
		return v, nil
	}
	return "", pipe.OrAbsent(err)
}
