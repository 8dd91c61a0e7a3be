package srsclient

import "context"

// Task is the pending result of a remote call. The call runs to completion
// once issued; Await only stops waiting for it.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn in its own goroutine and returns its Task.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.value, t.err = fn(ctx)
	}()
	return t
}

// Done is closed when the call has resolved.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await blocks until the call resolves or ctx is done.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then runs fn with the result after the call resolves, on the task's
// goroutine side. It returns a channel closed once fn has returned.
func (t *Task[T]) Then(fn func(T, error)) <-chan struct{} {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		<-t.done
		fn(t.value, t.err)
	}()
	return finished
}
