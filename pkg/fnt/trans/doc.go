// Package trans provides the natural transformations between the
// containers in this module: pure conversions that commute with Map,
// so transforming then mapping equals mapping then transforming.
//
// Highlights:
// - MaybeFromEither: Left → None, Right → Some (failure info discarded)
// - TaskFromIO: run the effect now, resolve with its result
// - TaskFromEither: Left → rejected, Right → resolved
// - TaskFromMaybe: None → rejected with ErrNoValue, Some → resolved
// - MaybeFromSeq / SeqFromMaybe: head projection and its lossy inverse
//
// There is intentionally no IO-from-Task conversion: an asynchronous
// settlement cannot be forced into an immediate synchronous result
// without blocking inside the effect.
package trans
