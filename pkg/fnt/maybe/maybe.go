package maybe

// Maybe wraps zero or one value of type T. Exactly one of the two
// states holds: present (Some) or empty (None). Values are immutable
// once constructed.
type Maybe[T any] struct {
	v  T
	ok bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{v: v, ok: true}
}

// None constructs the empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of lifts a raw value into the default (present) shape.
func Of[T any](v T) Maybe[T] {
	return Some(v)
}

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool {
	return m.ok
}

// IsNone reports whether the Maybe is empty.
func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

// Unwrap returns the value and whether it was present.
func (m Maybe[T]) Unwrap() (T, bool) {
	return m.v, m.ok
}

// Or returns the value if present, otherwise fallback.
func (m Maybe[T]) Or(fallback T) T {
	if m.ok {
		return m.v
	}
	return fallback
}

// Map applies f to the wrapped value. None absorbs: f is not invoked.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	return Map(m, f)
}

// Chain applies f, which already produces a Maybe, without adding a
// nesting level. None absorbs.
func (m Maybe[T]) Chain(f func(T) Maybe[T]) Maybe[T] {
	return Chain(m, f)
}

// Map is the type-changing functor operation.
func Map[In, Out any](m Maybe[In], f func(In) Out) Maybe[Out] {
	if !m.ok {
		return None[Out]()
	}
	return Some(f(m.v))
}

// Chain is the type-changing monadic bind.
func Chain[In, Out any](m Maybe[In], f func(In) Maybe[Out]) Maybe[Out] {
	if !m.ok {
		return None[Out]()
	}
	return f(m.v)
}

// Join collapses one level of nesting.
func Join[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if !m.ok {
		return None[T]()
	}
	return m.v
}
