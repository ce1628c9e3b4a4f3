// Package maybe provides the optional container: zero or one value.
//
// Highlights:
// - Some/None/Of: construct Maybe[T]
// - Map/Chain: transform the present value; None short-circuits
// - Join: flatten Maybe[Maybe[T]]
// - Unwrap/Or: leave the container
//
// The empty state is absorbing: no transform callback ever runs on
// None, it simply propagates.
package maybe
