package eff

// IO wraps a zero-argument computation that has not run yet.
// Constructing an IO performs no work; Run is the only execution point.
// Nothing prevents running the same IO twice; callers own idempotence.
type IO[T any] func() T

// Of lifts an already-computed value into a deferred computation.
func Of[T any](v T) IO[T] {
	return func() T {
		return v
	}
}

// From wraps a raw thunk.
func From[T any](run func() T) IO[T] {
	return IO[T](run)
}

// Run executes the deferred computation.
func (e IO[T]) Run() T {
	return e()
}

// Map composes a new deferred computation that applies f to the result.
// Neither computation runs until Run is called.
func (e IO[T]) Map(f func(T) T) IO[T] {
	return Map(e, f)
}

// Chain composes with a transform that itself produces an IO,
// collapsing the nesting.
func (e IO[T]) Chain(f func(T) IO[T]) IO[T] {
	return Chain(e, f)
}

// Map is the type-changing functor operation.
func Map[In, Out any](e IO[In], f func(In) Out) IO[Out] {
	return func() Out {
		return f(e())
	}
}

// Chain is the type-changing monadic bind.
func Chain[In, Out any](e IO[In], f func(In) IO[Out]) IO[Out] {
	return func() Out {
		return f(e())()
	}
}
