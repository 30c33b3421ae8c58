package chain

import (
	"context"
	"time"

	"github.com/ib-77/pipe/pkg/pipe"
	"github.com/ib-77/pipe/pkg/pipe/core"
	"github.com/ib-77/pipe/pkg/pipe/solo"
)

const defaultSource = "pipe/chain"

// Chain wraps a pipe.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result pipe.Result[T]
	step   int
}

// Start creates a new chain from a present value
func Start[T any](ctx context.Context, value T) *Chain[T] {
	return FromResult(ctx, pipe.Present(value))
}

// FromOption creates a new chain that is absent when o is
func FromOption[T any](ctx context.Context, o pipe.Option[T]) *Chain[T] {
	return FromResult(ctx, pipe.FromOption(o))
}

// FromPtr creates a new chain that is absent when p is nil
func FromPtr[T any](ctx context.Context, p *T) *Chain[T] {
	return FromOption(ctx, pipe.FromPtr(p))
}

// Empty creates a new absent chain
func Empty[T any](ctx context.Context) *Chain[T] {
	return FromResult(ctx, pipe.Absent[T]())
}

// FromResult creates a new chain from a pipe.Result. A nil ctx is replaced
// with context.Background.
func FromResult[T any](ctx context.Context, result pipe.Result[T]) *Chain[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// Result returns the underlying pipe.Result
func (c *Chain[T]) Result() pipe.Result[T] {
	return c.result
}

// Unwrap returns the value as an Option together with the first failure.
func (c *Chain[T]) Unwrap() (pipe.Option[T], error) {
	return c.result.Unwrap()
}

// Value returns the present value. An absent chain yields pipe.ErrAbsent.
func (c *Chain[T]) Value() (T, error) {
	if c.result.IsFailure() {
		var zero T
		return zero, c.result.Err()
	}
	return solo.Require(c.result.Option(), pipe.ErrAbsent)
}

// Next chains a step that may fail. The step is skipped when the chain is
// absent or has already failed.
func Next[T, U any](c *Chain[T], step func(context.Context, T) (U, error)) *Chain[U] {
	if !c.result.IsPresent() {
		return skip[T, U](c)
	}

	out, err := solo.Next(c.result.Value(), bind(c.ctx, step))
	if err != nil {
		return fail[T, U](c, err)
	}
	return link(c, pipe.PresentFrom(c.result, out))
}

// Map chains a transformation that cannot fail
func Map[T, U any](c *Chain[T], step func(context.Context, T) U) *Chain[U] {
	if !c.result.IsPresent() {
		return skip[T, U](c)
	}

	out := solo.Map(c.result.Value(), func(v T) U { return step(c.ctx, v) })
	return link(c, pipe.PresentFrom(c.result, out))
}

// Then chains a step that may report absence by returning an empty Option.
func Then[T, U any](c *Chain[T], step func(context.Context, T) (pipe.Option[U], error)) *Chain[U] {
	if !c.result.IsPresent() {
		return skip[T, U](c)
	}

	out, err := solo.Then(c.result.Option(), bind(c.ctx, step))
	if err != nil {
		return fail[T, U](c, err)
	}
	if v, ok := out.Get(); ok {
		return link(c, pipe.PresentFrom(c.result, v))
	}
	return link(c, pipe.AbsentFrom[T, U](c.result))
}

// Tap runs a side effect on the present value and passes the value on unchanged.
func (c *Chain[T]) Tap(step func(context.Context, T) error) *Chain[T] {
	if !c.result.IsPresent() {
		return skip[T, T](c)
	}

	if err := solo.End(c.result.Value(), bind1(c.ctx, step)); err != nil {
		return fail[T, T](c, err)
	}
	return link(c, c.result)
}

// Require turns an absent chain into a failure with err. Present and failed
// chains pass through untouched.
func (c *Chain[T]) Require(err error) *Chain[T] {
	if !c.result.IsAbsent() {
		return link(c, c.result)
	}

	_, err = solo.Require(c.result.Option(), err)
	return reject(c, err)
}

// Check fails the chain with err when pred is false for the present value.
// An absent chain stays absent and pred is not called.
func (c *Chain[T]) Check(pred func(context.Context, T) bool, err error) *Chain[T] {
	if !c.result.IsPresent() {
		return skip[T, T](c)
	}

	if err = solo.Check(pred(c.ctx, c.result.Value()), err); err != nil {
		return reject(c, err)
	}
	return link(c, c.result)
}

// RequireNotEmpty fails the chain with err when it is absent or holds an empty slice.
func RequireNotEmpty[S ~[]E, E any](c *Chain[S], err error) *Chain[S] {
	if c.result.IsFailure() {
		return link(c, c.result)
	}

	if _, err = solo.RequireNotEmpty(c.result.Option(), err); err != nil {
		return reject(c, err)
	}
	return link(c, c.result)
}

// Drop discards the value. A failure is kept; absence becomes a present Unit.
func (c *Chain[T]) Drop() *Chain[pipe.Unit] {
	if c.result.IsFailure() {
		return link(c, pipe.FailFrom[T, pipe.Unit](c.result))
	}
	return link(c, pipe.PresentFrom(c.result, pipe.Unit{}))
}

// End passes the present value to a final step and returns the first failure
// of the chain, if any. An absent chain ends without calling step.
func End[T any](c *Chain[T], step func(context.Context, T) error) error {
	final := c.step + 1

	if c.result.IsFailure() {
		c.emit(core.EventEnd, core.LevelWarning, final, "failed", c.result.Err())
		return c.result.Err()
	}

	err := solo.EndOpt(c.result.Option(), bind1(c.ctx, step))
	switch {
	case err != nil:
		c.emit(core.EventStepFailed, core.LevelError, final, "failed", err)
		c.emit(core.EventEnd, core.LevelWarning, final, "failed", err)
	case c.result.IsAbsent():
		c.emit(core.EventStepSkipped, core.LevelVerbose, final, "absent", nil)
		c.emit(core.EventEnd, core.LevelVerbose, final, "absent", nil)
	default:
		c.emit(core.EventEnd, core.LevelVerbose, final, "present", nil)
	}
	return err
}

// Restart starts a new step with no input unless the chain has failed.
// Absence of the previous value does not prevent the restart.
func Restart[T, U any](c *Chain[T], step func(context.Context) (U, error)) *Chain[U] {
	return Next(c.Drop(), func(ctx context.Context, _ pipe.Unit) (U, error) {
		return step(ctx)
	})
}

// Finally collapses the chain into a final value, calling exactly one handler.
func Finally[T, U any](c *Chain[T],
	onPresent func(context.Context, T) U,
	onAbsent func(context.Context) U,
	onFailure func(context.Context, error) U) U {

	switch {
	case c.result.IsFailure():
		return onFailure(c.ctx, c.result.Err())
	case c.result.IsAbsent():
		return onAbsent(c.ctx)
	default:
		return onPresent(c.ctx, c.result.Value())
	}
}

func bind[T, U any](ctx context.Context, step func(context.Context, T) (U, error)) func(T) (U, error) {
	return func(v T) (U, error) { return step(ctx, v) }
}

func bind1[T any](ctx context.Context, step func(context.Context, T) error) func(T) error {
	return func(v T) error { return step(ctx, v) }
}

func link[T, U any](c *Chain[T], result pipe.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: result,
		step:   c.step + 1,
	}
}

func skip[T, U any](c *Chain[T]) *Chain[U] {
	if c.result.IsFailure() {
		c.emit(core.EventStepSkipped, core.LevelVerbose, c.step+1, "failed", c.result.Err())
		return link(c, pipe.FailFrom[T, U](c.result))
	}

	c.emit(core.EventStepSkipped, core.LevelVerbose, c.step+1, "absent", nil)
	return link(c, pipe.AbsentFrom[T, U](c.result))
}

func fail[T, U any](c *Chain[T], err error) *Chain[U] {
	c.emit(core.EventStepFailed, core.LevelError, c.step+1, "failed", err)
	return link(c, pipe.FailureFrom[T, U](c.result, err))
}

func reject[T any](c *Chain[T], err error) *Chain[T] {
	c.emit(core.EventRequireFailed, core.LevelWarning, c.step+1, "failed", err)
	return link(c, pipe.FailureFrom[T, T](c.result, err))
}

func (c *Chain[T]) emit(eventType core.EventType, level core.Level, step int, state string, err error) {
	if !core.HasObserver(c.ctx) {
		return
	}

	data := map[string]any{
		"chain_id": c.result.Id().String(),
		"step":     step,
		"state":    state,
	}
	if err != nil {
		data["error"] = err.Error()
	}

	core.ObserverFrom(c.ctx).OnEvent(c.ctx, core.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now().UTC(),
		Source:    core.SourceFrom(c.ctx, defaultSource),
		Data:      data,
	})
}
