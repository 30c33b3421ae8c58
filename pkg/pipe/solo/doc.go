// Package solo contains single-value, synchronous combinators that thread a
// value through steps. Every call runs its step at most once, on the calling
// goroutine, and returns step errors exactly as they were produced.
//
// Highlights:
// - Next/Map: pass a value to a step and return its result
// - NextOpt/MapOpt/Then: same for Option values; absence skips the step
// - End/EndOpt: pass a value to a final step and return only its error
// - Restart: start a new side-effect chain with no input
// - Require/RequirePtr/Check/RequireNotEmpty: turn absence, false or emptiness
//   into the caller's error at the point of the call
package solo
