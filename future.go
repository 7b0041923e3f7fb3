package banbridge

import (
	"context"
	"sync"
)

// Future is the pending result of an asynchronous operation of the punishment service.
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// Complete resolves the future. Only the first call has an effect.
//
// Args:
//   - value: The result of the operation.
//   - err: The error of the operation, if any.
func (f *Future[T]) Complete(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future is resolved or the context is done.
//
// A nil context waits indefinitely. Await must not be called from a goroutine
// the punishment service needs in order to resolve the future.
//
// Args:
//   - ctx: The context bounding the wait.
//
// Returns:
//   - T: The result of the operation.
//   - error: The error of the operation, or the context error.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// NewFuture creates a new unresolved [Future].
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// CompletedFuture creates a [Future] that is already resolved.
func CompletedFuture[T any](value T, err error) *Future[T] {
	f := NewFuture[T]()
	f.Complete(value, err)
	return f
}
