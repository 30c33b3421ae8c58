// Package chain provides a fluent wrapper around pipe.Result[T]
// for building synchronous chains out of solo combinators.
//
// A Chain is present, absent or failed. Continuation steps run only on a
// present value; absence flows silently to the end of the chain until a
// Require turns it into an error, and the first error skips every later step.
// Steps run in the order they are written, each exactly once or not at all.
//
// Key operations:
// - Start/FromOption/FromPtr/Empty: begin a chain
// - Next/Map/Then: continue with a fallible, pure or Option-returning step
// - Tap: run a side effect and keep the value
// - Require/Check/RequireNotEmpty: turn absence, a false predicate or emptiness into an error
// - End: run a final step and return the chain's error
// - Restart/Drop: discard the value and continue from pipe.Unit
// - Finally: collapse the chain into a final value via handlers
//
// Events for skipped and failed steps are sent to the observer installed
// with core.WithObserver, if any.
package chain
