package workers

import (
	"context"
	"fmt"
)

// Pool bounds the number of blocking provider calls in flight. Callers stay
// on their own goroutine and suspend on a result channel while the task runs
// on a worker goroutine, so a slow upstream call never blocks the caller
// beyond its context.
type Pool struct {
	sem chan struct{}
}

// NewPool creates a pool that admits at most size concurrent tasks
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Size returns the pool's concurrency bound
func (p *Pool) Size() int {
	return cap(p.sem)
}

// Do runs task on a worker slot and waits for it to finish. If ctx is done
// before a slot frees up or before the task completes, Do returns the context
// error; an admitted task still runs to completion and releases its slot.
func (p *Pool) Do(ctx context.Context, task func(ctx context.Context) error) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-p.sem }()
		done <- task(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
