// Package exercises contains worked pipelines built from the library's
// containers and transformations:
//
// - FindUser/FindUserName: a lookup returning Task[Either[error, User]]
//   rewritten into Task[string] by inserting the disjoint-to-task
//   transform at the right composition point
// - SortText: sorting a text value through the Chars/Text isomorphism
//
// The disjoint-to-optional transform itself lives in package trans
// (trans.MaybeFromEither).
package exercises
