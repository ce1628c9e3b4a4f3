package exercises

import (
	"errors"

	"github.com/funlaws/fnt/pkg/fnt/either"
	"github.com/funlaws/fnt/pkg/fnt/fn"
	"github.com/funlaws/fnt/pkg/fnt/seq"
	"github.com/funlaws/fnt/pkg/fnt/task"
	"github.com/funlaws/fnt/pkg/fnt/trans"
)

// User is the record produced by the lookup pipeline.
type User struct {
	ID   int
	Name string
}

// ErrNotFound is carried by the failure branch when a lookup misses.
var ErrNotFound = errors.New("not found")

// FindUser is a stub repository lookup: it resolves with the disjoint
// result of the search. Non-positive ids miss.
func FindUser(id int) task.Task[either.Either[error, User]] {
	if id <= 0 {
		return task.Of(either.Left[error, User](ErrNotFound))
	}
	return task.Of(either.Right[error](User{ID: id, Name: "userface"}))
}

// FindUserName rewrites the lookup pipeline so the disjoint layer
// disappears from the external type: chaining TaskFromEither at the
// composition point merges the inner settlement into the task itself,
// leaving a single task that rejects on a miss and resolves with the
// user's name otherwise.
func FindUserName(id int) task.Task[string] {
	return task.Map(
		task.Chain(FindUser(id), trans.TaskFromEither[User]),
		func(u User) string { return u.Name },
	)
}

// SortText sorts the characters of a text value by composing the text
// isomorphism around a sort: split into runes, order them, join back.
func SortText(s string) string {
	order := func(rs seq.Seq[rune]) seq.Seq[rune] {
		return seq.SortBy(rs, fn.Identity[rune])
	}
	return fn.Compose3(seq.Text, order, seq.Chars)(s)
}
