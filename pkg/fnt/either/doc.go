// Package either provides the disjoint container: exactly one of a
// failure payload (Left) or a success payload (Right).
//
// Highlights:
// - Left/Right/Of: construct Either[L, R]
// - Map/Chain: transform the success payload; Left short-circuits
// - MapLeft: transform the failure payload
// - Fold: reduce both branches to one type
//
// The failure payload is a carried value, not a raised fault; nothing
// in this package panics.
package either
