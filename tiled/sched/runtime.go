// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

// Package sched schedules units of work whose execution order is inferred
// from the memory regions each unit declares it reads and/or writes.
//
// A Runtime accepts a computation plus a list of (region, access-mode)
// pairs. Two units conflict when their declared regions overlap and at least
// one side writes; conflicting units execute in submission order, while
// non-conflicting units may run concurrently. Correctness therefore hinges
// on every unit declaring its full footprint: an omitted region is a silent
// data race, not a detected error.
//
// The runtime supports no cancellation and no retries. Once spawned, a unit
// runs to completion or failure; failures are surfaced through Fetch and
// Sync.
package sched

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Task is a handle to one spawned unit of work. It carries completion status
// and the unit's error, nothing else.
type Task struct {
	fn   func() error
	deps []*Task
	done chan struct{}
	err  error
}

// Fetch blocks until the task completes and returns its error, if any.
func (t *Task) Fetch() error {
	<-t.done
	return t.err
}

func (t *Task) run() {
	t.err = t.fn()
	close(t.done)
}

func (t *Task) addDep(d *Task, seen map[*Task]bool) {
	if d == t || seen[d] {
		return
	}
	seen[d] = true
	t.deps = append(t.deps, d)
}

type coord struct{ row, col int }

// cell tracks the ordering frontier for one tile coordinate: the most recent
// writer and the readers spawned since that writer.
type cell struct {
	lastWriter *Task
	readers    []*Task
}

// Runtime infers dependencies between spawned tasks and executes independent
// tasks concurrently on a bounded number of goroutines.
//
// Parallelism follows the worker-pool convention: -1 = unlimited,
// 0 = disabled (tasks run inline during Spawn), >0 = bounded.
type Runtime struct {
	parallelism int
	sem         *semaphore.Weighted

	mu    sync.Mutex
	cells map[coord]*cell
	tasks []*Task
}

// New creates a Runtime bounded by GOMAXPROCS execution slots.
func New() *Runtime {
	return NewWithParallelism(runtime.GOMAXPROCS(0))
}

// NewWithParallelism creates a Runtime with the given number of execution
// slots. Dependency waiting does not occupy a slot, so bounded runtimes
// cannot deadlock on dependency chains.
func NewWithParallelism(parallelism int) *Runtime {
	r := &Runtime{
		parallelism: parallelism,
		cells:       make(map[coord]*cell),
	}
	if parallelism > 0 {
		r.sem = semaphore.NewWeighted(int64(parallelism))
	}
	return r
}

// Parallelism returns the configured execution-slot count.
func (r *Runtime) Parallelism() int { return r.parallelism }

// Spawn submits fn with its declared accesses and returns immediately.
// fn begins once every previously spawned task with a conflicting access has
// completed. With parallelism 0 the task instead runs inline before Spawn
// returns.
//
// Spawn and Sync must be called from a single submitter goroutine.
func (r *Runtime) Spawn(fn func() error, accesses []Access) *Task {
	t := &Task{fn: fn, done: make(chan struct{})}

	r.mu.Lock()
	seen := make(map[*Task]bool)
	for _, a := range accesses {
		for row := a.Region.Row0; row < a.Region.Row1; row++ {
			for col := a.Region.Col0; col < a.Region.Col1; col++ {
				c := r.cells[coord{row, col}]
				if c == nil {
					c = &cell{}
					r.cells[coord{row, col}] = c
				}
				if a.Mode.writes() {
					for _, rd := range c.readers {
						t.addDep(rd, seen)
					}
					if c.lastWriter != nil {
						t.addDep(c.lastWriter, seen)
					}
					c.lastWriter = t
					c.readers = c.readers[:0]
				} else {
					if c.lastWriter != nil {
						t.addDep(c.lastWriter, seen)
					}
					c.readers = append(c.readers, t)
				}
			}
		}
	}
	r.tasks = append(r.tasks, t)
	r.mu.Unlock()

	if r.parallelism == 0 {
		// Sequential mode: all predecessors already completed inline.
		t.run()
		return t
	}

	go func() {
		for _, d := range t.deps {
			<-d.done
		}
		if r.sem != nil {
			_ = r.sem.Acquire(context.Background(), 1)
			defer r.sem.Release(1)
		}
		t.run()
	}()
	return t
}

// Sync blocks until every task spawned so far has completed and returns the
// first error in submission order, or nil. It also resets the dependency
// frontier, so the Runtime can be reused for a fresh batch of work.
func (r *Runtime) Sync() error {
	r.mu.Lock()
	pending := r.tasks
	r.tasks = nil
	r.cells = make(map[coord]*cell)
	r.mu.Unlock()

	var first error
	for _, t := range pending {
		if err := t.Fetch(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
