// Package pipe holds the data model shared by the combinator packages:
// Option[T] for values that may be absent, Result[T] for the settled state of
// a chain (present, absent or failed), and the ErrAbsent sentinel.
//
// The combinators themselves live in subpackages:
// - solo: plain function combinators (Next, End, Require, ...)
// - chain: the same operations as a fluent, left-to-right Chain[T]
// - core: context options and the Observer used by chain
package pipe
