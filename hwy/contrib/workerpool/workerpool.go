// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// band-parallel image kernels. A Pool is created once by its owner and reused
// across many calls, so a video pipeline halving every frame does not spawn
// a fresh set of goroutines per frame.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	h := halve.NewHalver(halve.WithPool(pool))
//	for frame := range frames {
//	    h.Halve(frame.Pix, w, ht, out, stride)
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one task of a Run call.
type workItem struct {
	fn      func(i int)
	index   int
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn(item.index)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run calls fn(i) for every i in [0, n), one task per index, and blocks until
// all of them have returned. Tasks run concurrently in no particular order.
//
// A single task, or a closed pool, runs on the calling goroutine.
// Run must not be called concurrently with Close.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if n == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.workC <- workItem{fn: fn, index: i, barrier: &wg}
	}
	wg.Wait()
}
