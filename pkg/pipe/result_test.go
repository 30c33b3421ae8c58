package pipe

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	present := Present(1)
	assert.True(t, present.IsPresent())
	assert.False(t, present.IsAbsent())
	assert.False(t, present.IsFailure())

	absent := Absent[int]()
	assert.True(t, absent.IsAbsent())
	assert.False(t, absent.IsPresent())

	failed := Failure[int](boom)
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsPresent())
	assert.False(t, failed.IsAbsent())
	assert.Same(t, boom, failed.Err())
}

func TestResult_IdentityIsUnique(t *testing.T) {
	t.Parallel()

	a, b := Present(1), Present(1)
	assert.NotEqual(t, uuid.Nil, a.Id())
	assert.NotEqual(t, a.Id(), b.Id())
	assert.False(t, a.CreatedAt().IsZero())
}

func TestResult_FromKeepsIdentity(t *testing.T) {
	t.Parallel()

	from := Present("x")
	boom := errors.New("boom")

	moved := PresentFrom(from, 42)
	assert.Equal(t, from.Id(), moved.Id())
	assert.Equal(t, from.CreatedAt(), moved.CreatedAt())
	assert.Equal(t, 42, moved.Value())

	failed := FailureFrom[string, int](from, boom)
	assert.Equal(t, from.Id(), failed.Id())
	assert.ErrorIs(t, failed.Err(), boom)

	carried := FailFrom[int, bool](failed)
	assert.Equal(t, from.Id(), carried.Id())
	assert.Same(t, boom, carried.Err())

	gone := AbsentFrom[string, int](from)
	assert.Equal(t, from.Id(), gone.Id())
	assert.True(t, gone.IsAbsent())
}

func TestResult_NilFailureIsErrAbsent(t *testing.T) {
	t.Parallel()

	r := Failure[int](nil)
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrAbsent)
}

func TestResult_Unwrap(t *testing.T) {
	t.Parallel()

	o, err := FromOption(Some(3)).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, Some(3), o)

	o, err = FromOption(None[int]()).Unwrap()
	require.NoError(t, err)
	assert.True(t, o.IsAbsent())

	boom := errors.New("boom")
	o, err = FromValue(3, boom).Unwrap()
	assert.Same(t, boom, err)
	assert.True(t, o.IsAbsent())

	o, err = FromValue(3, nil).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, Some(3), o)
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.False(t, IsNil(1))
	assert.False(t, IsNil(errors.New("x")))
}

type mapError map[string]string

func (e mapError) Error() string { return "fields: " + e["field"] }

type funcError func() string

func (e funcError) Error() string { return e() }

type sliceError []string

func (e sliceError) Error() string { return "errors" }

func TestOrAbsent_TypedNilOfAnyKind(t *testing.T) {
	t.Parallel()

	var m mapError
	var f funcError
	var s sliceError

	assert.ErrorIs(t, OrAbsent(m), ErrAbsent)
	assert.ErrorIs(t, OrAbsent(f), ErrAbsent)
	assert.ErrorIs(t, OrAbsent(s), ErrAbsent)
	assert.ErrorIs(t, Failure[int](m).Err(), ErrAbsent)

	kept := mapError{"field": "name"}
	assert.Equal(t, kept, OrAbsent(kept))
}
