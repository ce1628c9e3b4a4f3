// Package eff provides the deferred synchronous effect container IO[T]:
// a computation that is described at construction time and performed
// only when explicitly run.
//
// Highlights:
// - Of/From: construct IO[T] without running anything
// - Map/Chain: build up a larger deferred computation
// - Run: perform the effect and return its value
package eff
