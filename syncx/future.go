package syncx

import (
	"context"
	"github.com/benbjohnson/clock"
	"sync"
	"time"
)

// Future is a value that is resolved asynchronously at a later time.
// Once resolved, the value is cached for other calls to Await.
type Future[T any] interface {
	// Resolve sets the value of the [Future] so it can be resolved by consumers.
	// Only the first call to Resolve will set the result. Subsequent calls do nothing.
	Resolve(T)
	// Await blocks until the value is made available with [Future.Resolve], or until the timeout elapses if specified.
	// If the timeout limit is reached, then the [Future] type's zero value is returned.
	// If no timeout is given, then the function will wait indefinitely.
	Await(...time.Duration) T
	// Done is closed once the [Future] is resolved.
	Done() <-chan struct{}
}

func NewFuture[T any]() Future[T] {
	return newFuture[T]()
}

// FutureErr is the same as [Future], but it returns a value and an error.
// This is the completion handle returned from asynchronous emission.
type FutureErr[T any] interface {
	// ResolveErr sets the value (and possibly an error) of the [FutureErr] so it can be resolved by consumers.
	// Only the first call to ResolveErr will set the result. Subsequent calls do nothing.
	ResolveErr(T, error)
	// AwaitErr blocks until the value is made available with [FutureErr.ResolveErr], or until the timeout elapses if specified.
	// If the timeout limit is reached, then the zero value is returned along with [context.DeadlineExceeded].
	// If no timeout is given, then the function will wait indefinitely.
	AwaitErr(...time.Duration) (T, error)
	// AwaitCtx is the same as AwaitErr, but waits until the context is done instead of a timeout.
	AwaitCtx(ctx context.Context) (T, error)
	// AwaitClock races the [FutureErr] against a timer from clk.
	// This allows tests to control the passage of time with a mock clock.
	AwaitClock(clk clock.Clock, timeout time.Duration) (T, error)
	// Done is closed once the [FutureErr] is resolved.
	Done() <-chan struct{}
}

func NewFutureErr[T any]() FutureErr[T] {
	return newFuture[T]()
}

// StaticFuture returns a [Future] that's already resolved with val.
func StaticFuture[T any](val T) Future[T] {
	f := newFuture[T]()
	f.Resolve(val)
	return f
}

// StaticFutureErr returns a [FutureErr] that's already resolved with val and err.
func StaticFutureErr[T any](val T, err error) FutureErr[T] {
	f := newFuture[T]()
	f.ResolveErr(val, err)
	return f
}

type future[T any] struct {
	resolve sync.Once
	done    chan struct{}
	val     T
	err     error
}

func newFuture[T any]() *future[T] {
	return &future[T]{
		done: make(chan struct{}),
	}
}

func (f *future[T]) Resolve(val T) {
	f.ResolveErr(val, nil)
}

func (f *future[T]) Await(timeout ...time.Duration) T {
	val, _ := f.AwaitErr(timeout...)
	return val
}

func (f *future[T]) ResolveErr(val T, err error) {
	f.resolve.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

func (f *future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *future[T]) AwaitErr(timeout ...time.Duration) (T, error) {
	var (
		ctx    = context.Background()
		cancel = func() {}
	)
	if len(timeout) > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout[0])
	}
	defer cancel()
	return f.AwaitCtx(ctx)
}

func (f *future[T]) AwaitCtx(ctx context.Context) (T, error) {
	// A resolved value wins over a context that's also done.
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *future[T]) AwaitClock(clk clock.Clock, timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	timer := clk.Timer(timeout)
	defer timer.Stop()
	select {
	case <-f.done:
		return f.val, f.err
	case <-timer.C:
		var zero T
		return zero, context.DeadlineExceeded
	}
}
