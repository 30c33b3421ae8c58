package pipe

import "fmt"

// Option holds a value of type T or nothing. The zero Option is absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps v as a present value. Zero values are present too.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr treats a nil pointer as absence
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOK adapts the comma-ok idiom (map lookups, type assertions).
func FromOK[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// OrElse returns the value if present, def otherwise
func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
