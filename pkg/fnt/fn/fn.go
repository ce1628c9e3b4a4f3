package fn

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Compose composes same-typed functions right-to-left:
// Compose(f, g, h)(x) == f(g(h(x))). Grouping does not matter:
// Compose(Compose(f, g), h) behaves the same as Compose(f, Compose(g, h)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		out := v
		for i := len(fns) - 1; i >= 0; i-- {
			out = fns[i](out)
		}
		return out
	}
}

// Pipe applies same-typed functions to value left-to-right:
// Pipe(x, f, g) == g(f(x)).
func Pipe[T any](value T, fns ...func(T) T) T {
	out := value
	for _, f := range fns {
		out = f(out)
	}
	return out
}

// Compose2 composes two functions right-to-left: Compose2(g, f)(x) == g(f(x)).
// Use this (and Compose3) when stages change type; the variadic Compose
// cannot express that.
func Compose2[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 composes three functions right-to-left:
// Compose3(h, g, f)(x) == h(g(f(x))).
func Compose3[A, B, C, D any](h func(C) D, g func(B) C, f func(A) B) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}
