package trans

import (
	"errors"

	"github.com/funlaws/fnt/pkg/fnt/eff"
	"github.com/funlaws/fnt/pkg/fnt/either"
	"github.com/funlaws/fnt/pkg/fnt/maybe"
	"github.com/funlaws/fnt/pkg/fnt/seq"
	"github.com/funlaws/fnt/pkg/fnt/task"
)

// ErrNoValue is the rejection carried by TaskFromMaybe when the source
// is empty and there is no payload to report.
var ErrNoValue = errors.New("no value")

// MaybeFromEither converts the disjoint container to the optional one.
// The failure payload is discarded: Left becomes None, Right becomes Some.
func MaybeFromEither[L, R any](e either.Either[L, R]) maybe.Maybe[R] {
	if v, ok := e.GetRight(); ok {
		return maybe.Some(v)
	}
	return maybe.None[R]()
}

// TaskFromIO converts a deferred synchronous effect to a task. The
// effect runs eagerly at conversion time; its result feeds an
// immediately-resolving task.
func TaskFromIO[T any](e eff.IO[T]) task.Task[T] {
	return task.Of(e.Run())
}

// TaskFromEither converts the disjoint container to a task: the failure
// branch becomes an immediate rejection, the success branch an immediate
// resolution.
func TaskFromEither[R any](e either.Either[error, R]) task.Task[R] {
	if v, ok := e.GetRight(); ok {
		return task.Of(v)
	}
	err, _ := e.GetLeft()
	return task.Reject[R](err)
}

// TaskFromMaybe converts the optional container to a task: None becomes
// a rejection with ErrNoValue, Some an immediate resolution.
func TaskFromMaybe[T any](m maybe.Maybe[T]) task.Task[T] {
	if v, ok := m.Unwrap(); ok {
		return task.Of(v)
	}
	return task.Reject[T](ErrNoValue)
}

// MaybeFromSeq converts a sequence to the optional container holding its
// first element. Lossy: every element after the first is discarded.
func MaybeFromSeq[T any](s seq.Seq[T]) maybe.Maybe[T] {
	if v, ok := s.Head(); ok {
		return maybe.Some(v)
	}
	return maybe.None[T]()
}

// SeqFromMaybe converts the optional container to a sequence of zero or
// one elements. Note that MaybeFromSeq and SeqFromMaybe do not form an
// isomorphism: a round trip through Maybe keeps at most one element.
func SeqFromMaybe[T any](m maybe.Maybe[T]) seq.Seq[T] {
	if v, ok := m.Unwrap(); ok {
		return seq.Of(v)
	}
	return seq.Seq[T]{}
}
