package task

import (
	"context"
	"sync"
	"sync/atomic"
)

// Task wraps a computation that eventually settles through exactly one
// of two continuations: reject with an error or resolve with a value.
// Constructing a Task performs no work; Fork is the execution entry
// point and enforces at-most-once settlement.
type Task[T any] func(ctx context.Context, reject func(error), resolve func(T))

// Of lifts a value into an immediately-resolving task.
func Of[T any](v T) Task[T] {
	return func(ctx context.Context, reject func(error), resolve func(T)) {
		resolve(v)
	}
}

// Reject constructs an immediately-rejecting task.
func Reject[T any](err error) Task[T] {
	return func(ctx context.Context, reject func(error), resolve func(T)) {
		reject(err)
	}
}

// Suspend wraps a raw dual-continuation computation.
func Suspend[T any](run func(ctx context.Context, reject func(error), resolve func(T))) Task[T] {
	return Task[T](run)
}

// onceSettle wraps a continuation pair so that only the first settlement
// through either continuation is delivered; later attempts are silently
// dropped.
func onceSettle[T any](reject func(error), resolve func(T)) (func(error), func(T)) {
	var settled atomic.Uint32
	return func(err error) {
			if settled.Add(1) == 1 {
				reject(err)
			}
		},
		func(v T) {
			if settled.Add(1) == 1 {
				resolve(v)
			}
		}
}

// Fork starts the task with one-shot settlement enforcement.
func (t Task[T]) Fork(ctx context.Context, reject func(error), resolve func(T)) {
	r, s := onceSettle(reject, resolve)
	t(ctx, r, s)
}

// Await forks the task on a new goroutine and blocks the caller until
// it settles or ctx is done. Only the wait is cancelable; the task
// itself keeps running until it settles.
func (t Task[T]) Await(ctx context.Context) Outcome[T] {
	ch := make(chan Outcome[T], 1)
	go t.Fork(ctx,
		func(err error) { ch <- Failed[T](err) },
		func(v T) { ch <- Settled(v) })

	select {
	case o := <-ch:
		return o
	case <-ctx.Done():
		return Failed[T](ctx.Err())
	}
}

// Map composes a new task that applies f to the resolved value.
// Rejection absorbs: f is not invoked.
func (t Task[T]) Map(f func(T) T) Task[T] {
	return Map(t, f)
}

// Chain composes with a transform producing another task, subscribing
// to the inner task once the outer one resolves.
func (t Task[T]) Chain(f func(T) Task[T]) Task[T] {
	return Chain(t, f)
}

// Map is the type-changing functor operation.
func Map[In, Out any](t Task[In], f func(In) Out) Task[Out] {
	return func(ctx context.Context, reject func(error), resolve func(Out)) {
		t(ctx, reject, func(v In) {
			resolve(f(v))
		})
	}
}

// Chain is the type-changing monadic bind. The inner task runs on the
// same context and settles through the outer continuations, so the
// result is a single task, not a task of a task.
func Chain[In, Out any](t Task[In], f func(In) Task[Out]) Task[Out] {
	return func(ctx context.Context, reject func(error), resolve func(Out)) {
		t(ctx, reject, func(v In) {
			f(v)(ctx, reject, resolve)
		})
	}
}

// All forks every task concurrently and resolves with their values in
// input order once all of them resolve. The first rejection settles the
// combined task and suppresses the resolution; All still waits for
// every task to settle before finishing.
func All[T any](tasks ...Task[T]) Task[[]T] {
	return func(ctx context.Context, reject func(error), resolve func([]T)) {
		r, s := onceSettle(reject, resolve)
		out := make([]T, len(tasks))
		var failed atomic.Bool
		wg := &sync.WaitGroup{}

		// wg counts settlements, not fork returns: a task body may hand
		// its continuations to another goroutine and return early.
		for i, tk := range tasks {
			i := i // per-iteration copy: the go directive is below 1.22
			wg.Add(1)
			go tk.Fork(ctx,
				func(err error) {
					failed.Store(true)
					r(err)
					wg.Done()
				},
				func(v T) {
					out[i] = v
					wg.Done()
				})
		}

		go func() {
			wg.Wait()
			if !failed.Load() {
				s(out)
			}
		}()
	}
}

// Race forks every task concurrently; the first settlement of any kind
// wins and the rest are dropped. With no tasks there is nothing that
// can settle, so the result stays pending forever (unlike All, which
// resolves immediately with an empty slice); Await on it returns only
// once its context is done.
func Race[T any](tasks ...Task[T]) Task[T] {
	return func(ctx context.Context, reject func(error), resolve func(T)) {
		r, s := onceSettle(reject, resolve)
		for _, tk := range tasks {
			go tk.Fork(ctx, r, s)
		}
	}
}
