// Package fnt defines the shared capabilities implemented by every
// container in this module.
//
// Go methods cannot introduce their own type parameters, so the
// type-changing transforms live as package-level functions next to each
// container (maybe.Map, either.Chain, ...). The interfaces here capture
// the endomorphic special case, which is expressible, and give law tests
// a single surface to verify against.
package fnt

// Functor is implemented by containers whose wrapped values can be
// transformed without changing the container's shape. F is the concrete
// container type (F-bounded usage: Maybe[T] implements Functor[Maybe[T], T]).
//
// Implementations must satisfy the functor laws:
//   - c.Map(identity) is equivalent to c
//   - c.Map(f).Map(g) is equivalent to c.Map(g after f)
type Functor[F any, T any] interface {
	// Map applies f to the wrapped value(s). Empty and failure states
	// absorb: f is not invoked and the marker is returned unchanged.
	Map(f func(T) T) F
}

// Monad extends Functor with flatten-after-map. Chain applies a
// transform that already produces a container and collapses the single
// level of nesting.
type Monad[F any, T any] interface {
	Functor[F, T]

	// Chain applies f to the wrapped value and returns its result
	// directly. Empty and failure states absorb as in Map.
	Chain(f func(T) F) F
}
