package either

// Either wraps exactly one of two labeled values: a failure payload
// (Left) or a success payload (Right). The tag is fixed at construction.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs the failure branch.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right constructs the success branch.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// Of lifts a raw value into the success branch.
func Of[L, R any](r R) Either[L, R] {
	return Right[L, R](r)
}

// IsLeft reports whether the failure branch holds.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the success branch holds.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the failure payload and whether it holds.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// GetRight returns the success payload and whether it holds.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

// Map applies f to the success payload. Left absorbs: f is not invoked.
func (e Either[L, R]) Map(f func(R) R) Either[L, R] {
	return Map(e, f)
}

// Chain applies f, which already produces an Either, without adding a
// nesting level. Left absorbs.
func (e Either[L, R]) Chain(f func(R) Either[L, R]) Either[L, R] {
	return Chain(e, f)
}

// Map is the type-changing functor operation over the success payload.
func Map[L, In, Out any](e Either[L, In], f func(In) Out) Either[L, Out] {
	if !e.isRight {
		return Left[L, Out](e.left)
	}
	return Right[L, Out](f(e.right))
}

// MapLeft transforms the failure payload, leaving success untouched.
func MapLeft[In, Out, R any](e Either[In, R], f func(In) Out) Either[Out, R] {
	if e.isRight {
		return Right[Out, R](e.right)
	}
	return Left[Out, R](f(e.left))
}

// Chain is the type-changing monadic bind over the success payload.
func Chain[L, In, Out any](e Either[L, In], f func(In) Either[L, Out]) Either[L, Out] {
	if !e.isRight {
		return Left[L, Out](e.left)
	}
	return f(e.right)
}

// Fold reduces both branches to a common type.
func Fold[L, R, Out any](e Either[L, R], onLeft func(L) Out, onRight func(R) Out) Out {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
