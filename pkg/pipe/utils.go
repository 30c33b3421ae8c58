package pipe

import (
	"errors"
	"reflect"
)

// Unit is the input of a chain that starts from nothing.
type Unit = struct{}

// ErrAbsent stands in for a nil failure handed to a validation combinator.
var ErrAbsent = errors.New("pipe: required value is absent")

// IsNil reports nil and typed nils of every nilable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// OrAbsent returns err, or ErrAbsent when err is nil or a typed nil.
func OrAbsent(err error) error {
	if IsNil(err) {
		return ErrAbsent
	}
	return err
}
