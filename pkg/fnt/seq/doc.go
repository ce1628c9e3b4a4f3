// Package seq provides the sequence container: an ordered, immutable
// collection whose per-element transform is the analogue of map on the
// other containers.
//
// Highlights:
// - Of: singleton sequence
// - Map/Chain: element transform and flat-map (via samber/lo)
// - Head: first element, if any
// - SortBy: non-mutating stable sort by key
// - Chars/Text: the isomorphism between a text value and the ordered
//   sequence of its runes
package seq
