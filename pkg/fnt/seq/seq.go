package seq

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// Seq is an ordered collection of elements. All operations return new
// sequences; inputs are never mutated.
type Seq[T any] []T

// Of lifts a single value into a one-element sequence.
func Of[T any](v T) Seq[T] {
	return Seq[T]{v}
}

// Map applies f to every element.
func Map[In, Out any](s Seq[In], f func(In) Out) Seq[Out] {
	return lo.Map(s, func(v In, _ int) Out {
		return f(v)
	})
}

// Chain applies f, which produces a sequence per element, and
// concatenates the results (flat-map).
func Chain[In, Out any](s Seq[In], f func(In) Seq[Out]) Seq[Out] {
	return lo.FlatMap(s, func(v In, _ int) []Out {
		return f(v)
	})
}

// Map is the endomorphic method form of the package-level Map.
func (s Seq[T]) Map(f func(T) T) Seq[T] {
	return Map(s, f)
}

// Chain is the endomorphic method form of the package-level Chain.
func (s Seq[T]) Chain(f func(T) Seq[T]) Seq[T] {
	return Chain(s, f)
}

// Head returns the first element and whether one exists.
func (s Seq[T]) Head() (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// SortBy returns a stably sorted copy ordered by the key function.
func SortBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	out := slices.Clone([]T(s))
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// Chars splits a text value into the ordered sequence of its runes.
// Text is its inverse: Text(Chars(s)) == s for every s.
func Chars(s string) Seq[rune] {
	return Seq[rune](s)
}

// Text joins a sequence of runes back into a text value.
func Text(s Seq[rune]) string {
	return string([]rune(s))
}
