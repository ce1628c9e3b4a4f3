package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Outcome records a single task settlement: either a resolved value or
// a rejection error, stamped with an id and the settlement time.
type Outcome[T any] struct {
	id        uuid.UUID
	settledAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

// Settled records a resolution.
func Settled[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		isSuccess: true,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failed records a rejection. Context cancellation errors are flagged
// as cancellations.
func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isCancel:  isCancellation(err),
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Value returns the resolved value.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the rejection error, if any.
func (o Outcome[T]) Err() error {
	return o.err
}

// IsSuccess reports whether the task resolved.
func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

// IsCancel reports whether the rejection came from context cancellation.
func (o Outcome[T]) IsCancel() bool {
	return o.isCancel
}

// SettledAt returns the settlement time (UTC).
func (o Outcome[T]) SettledAt() time.Time {
	return o.settledAt
}

// Id returns the settlement id.
func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
