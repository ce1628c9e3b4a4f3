// Package interop converts between this module's containers and the
// samber/mo equivalents. Each pair of conversions is an isomorphism:
// the round trip in either direction reproduces the original exactly,
// and every conversion commutes with the respective Map.
//
// Highlights:
// - OptionFromMaybe/MaybeFromOption: Maybe[T] to/from mo.Option[T]
// - EitherTo/EitherFrom: Either[L, R] to/from mo.Either[L, R]
// - ResultFromEither/EitherFromResult: Either[error, T] to/from mo.Result[T]
package interop
