// Package task provides the deferred asynchronous effect container
// Task[T]: a computation that eventually settles exactly once, either
// rejected with an error or resolved with a value.
//
// Highlights:
// - Of/Reject/Suspend: construct Task[T] without running anything
// - Map/Chain: compose the continuation chain; rejection short-circuits
// - Fork: start the task; settlement is delivered at most once
// - Await: block the caller until settlement, yielding an Outcome[T]
// - All/Race: fan out several tasks and join their settlements
//
// There is deliberately no conversion from Task to a synchronous effect:
// forcing a settlement into an immediate result would require blocking
// inside the effect, which breaks the non-blocking contract. Await
// blocks the caller that asked for it, never the task graph itself.
package task
