// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for the parallel
// sort strategies. The pool is created once per benchmark run and reused
// across every sort pass, so goroutine spawn overhead never shows up in
// the measured phase times.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(data), func(start, end int) {
//	    process(data[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// task is one unit of work submitted to the pool.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

// Pool is a fixed set of persistent worker goroutines fed from a shared
// channel. Workers are spawned at construction and live until Close.
type Pool struct {
	workers int
	tasks   chan task
	once    sync.Once
	closed  atomic.Bool
}

// New creates a pool with n workers, or GOMAXPROCS workers when n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan task, n),
	}
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers reports the worker count chosen at construction.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close shuts the pool down after all submitted work has drained.
// Safe to call more than once.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and
// blocks until every range has been processed. fn receives half-open
// [start, end) bounds. When the range is too small to split, or the
// pool is closed, fn runs inline on the caller's goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForChunks(n, 0, fn)
}

// ParallelForChunks is ParallelFor with an explicit chunk size;
// chunk <= 0 derives one chunk per worker. The radix scatter passes
// need chunk bounds that line up with precomputed per-chunk offsets,
// hence the explicit form.
func (p *Pool) ParallelForChunks(n, chunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if chunk <= 0 {
		chunk = (n + p.workers - 1) / p.workers
	}
	if chunk >= n || p.closed.Load() {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}
