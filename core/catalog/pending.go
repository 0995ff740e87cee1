package catalog

import "context"

// Pending is the deferred result of an asynchronous refresh.
type Pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// runAsync starts fn on its own goroutine.
func runAsync[T any](ctx context.Context, fn func(context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.val, p.err = fn(ctx)
	}()
	return p
}

// Done is closed once the result is available.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result is available or ctx ends. Giving up on the
// wait does not cancel the refresh itself.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
