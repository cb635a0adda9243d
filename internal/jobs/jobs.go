// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package jobs runs bounded background work (shader compilation, asset
// decoding) off the frame thread, returning a future the caller polls
// or waits on once the result is needed.
package jobs

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many jobs run concurrently and tracks them so Wait
// can block until everything submitted so far has finished.
type Pool struct {
	group *errgroup.Group
	ctx   context.Context
}

// NewPool creates a pool that runs at most limit jobs at once. A
// non-positive limit means unbounded: SetLimit is only applied for a
// positive limit.
func NewPool(ctx context.Context, limit int) *Pool {
	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	return &Pool{group: group, ctx: ctx}
}

// Future resolves to a job's result once it has completed.
type Future[T any] struct {
	ch <-chan result[T]
}

type result[T any] struct {
	value T
	err   error
}

// Wait blocks until the job completes and returns its result. Wait
// must only be called once per Future.
func (f Future[T]) Wait() (T, error) {
	r := <-f.ch
	return r.value, r.err
}

// Submit schedules fn to run in the pool and returns a Future for its
// result. fn receives the pool's context, which is cancelled if any
// previously submitted job in the same pool returns an error.
func Submit[T any](p *Pool, fn func(ctx context.Context) (T, error)) Future[T] {
	ch := make(chan result[T], 1)
	p.group.Go(func() error {
		v, err := fn(p.ctx)
		ch <- result[T]{value: v, err: err}
		return err
	})
	return Future[T]{ch: ch}
}

// Wait blocks until every job submitted to p has completed, returning
// the first error encountered, if any.
func (p *Pool) Wait() error {
	return p.group.Wait()
}
