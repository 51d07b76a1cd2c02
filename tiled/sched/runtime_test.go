// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package sched

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func rw(i, j int) []Access {
	return []Access{{Region: TileRegion(i, j), Mode: ReadWrite}}
}

func rd(i, j int) []Access {
	return []Access{{Region: TileRegion(i, j), Mode: Read}}
}

// TestConflictingWritersSerialize spawns many read-write tasks on the same
// tile incrementing an unsynchronized counter. Any missed ordering shows up
// as a lost update (and as a race under -race).
func TestConflictingWritersSerialize(t *testing.T) {
	rt := New()
	n := 0
	for iter := 0; iter < 100; iter++ {
		rt.Spawn(func() error {
			n++
			return nil
		}, rw(0, 0))
	}
	require.NoError(t, rt.Sync())
	require.Equal(t, 100, n)
}

// TestSubmissionOrderOnConflict checks the writer/reader ordering on one
// tile: writer, then a batch of readers (any order among themselves), then a
// second writer that must observe all readers finished.
func TestSubmissionOrderOnConflict(t *testing.T) {
	rt := New()

	var mu sync.Mutex
	var order []string
	log := func(id string) {
		mu.Lock()
		order = append(order, id)
		mu.Unlock()
	}

	rt.Spawn(func() error {
		time.Sleep(10 * time.Millisecond) // give readers a chance to jump the queue
		log("w1")
		return nil
	}, rw(0, 0))
	for iter := 0; iter < 3; iter++ {
		rt.Spawn(func() error {
			log("r")
			return nil
		}, rd(0, 0))
	}
	rt.Spawn(func() error {
		log("w2")
		return nil
	}, rw(0, 0))

	require.NoError(t, rt.Sync())
	require.Len(t, order, 5)
	require.Equal(t, "w1", order[0])
	require.Equal(t, "w2", order[4])
	for _, id := range order[1:4] {
		require.Equal(t, "r", id)
	}
}

// TestNonConflictingRunConcurrently spawns two tasks on disjoint tiles that
// rendezvous with each other. They can only both finish if the runtime did
// not serialize them.
func TestNonConflictingRunConcurrently(t *testing.T) {
	rt := NewWithParallelism(-1)

	a := make(chan struct{})
	b := make(chan struct{})
	meet := func(send, recv chan struct{}) error {
		close(send)
		select {
		case <-recv:
			return nil
		case <-time.After(5 * time.Second):
			return errors.New("peer never started: tasks were serialized")
		}
	}

	rt.Spawn(func() error { return meet(a, b) }, rw(0, 0))
	rt.Spawn(func() error { return meet(b, a) }, rw(1, 1))
	require.NoError(t, rt.Sync())
}

func TestDependencyChainAcrossTiles(t *testing.T) {
	// w(0,0) -> reader of (0,0) writing (0,1) -> reader of (0,1).
	rt := New()

	var mu sync.Mutex
	var order []int
	step := func(id int, d time.Duration) func() error {
		return func() error {
			time.Sleep(d)
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
			return nil
		}
	}

	rt.Spawn(step(1, 20*time.Millisecond), rw(0, 0))
	rt.Spawn(step(2, 10*time.Millisecond), []Access{
		{Region: TileRegion(0, 0), Mode: Read},
		{Region: TileRegion(0, 1), Mode: ReadWrite},
	})
	rt.Spawn(step(3, 0), rd(0, 1))

	require.NoError(t, rt.Sync())
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestFetchPropagatesError(t *testing.T) {
	rt := New()
	boom := errors.New("boom")

	ok := rt.Spawn(func() error { return nil }, rw(0, 0))
	bad := rt.Spawn(func() error { return boom }, rw(0, 0))

	require.NoError(t, ok.Fetch())
	require.ErrorIs(t, bad.Fetch(), boom)
	require.ErrorIs(t, rt.Sync(), boom)
}

func TestSyncReturnsFirstErrorInSubmissionOrder(t *testing.T) {
	rt := New()
	first := errors.New("first failure")
	second := errors.New("second failure")

	rt.Spawn(func() error { return first }, rw(0, 0))
	rt.Spawn(func() error { return second }, rw(0, 0))

	require.ErrorIs(t, rt.Sync(), first)
}

func TestInlineModeRunsDuringSpawn(t *testing.T) {
	rt := NewWithParallelism(0)

	ran := false
	task := rt.Spawn(func() error {
		ran = true
		return nil
	}, rw(0, 0))

	require.True(t, ran, "parallelism 0 must run the task inline")
	require.NoError(t, task.Fetch())
	require.NoError(t, rt.Sync())
}

func TestRuntimeReuseAfterSync(t *testing.T) {
	rt := NewWithParallelism(2)
	for round := 0; round < 3; round++ {
		n := 0
		for iter := 0; iter < 10; iter++ {
			rt.Spawn(func() error {
				n++
				return nil
			}, rw(0, 0))
		}
		require.NoError(t, rt.Sync(), "round %d", round)
		require.Equal(t, 10, n, "round %d", round)
	}
}

func TestSelfAccessDoesNotDeadlock(t *testing.T) {
	// A task declaring Read and Write entries on the same tile must not
	// become its own dependency.
	rt := New()
	task := rt.Spawn(func() error { return nil }, []Access{
		{Region: TileRegion(0, 0), Mode: Read},
		{Region: TileRegion(0, 0), Mode: Write},
	})
	require.NoError(t, task.Fetch())
	require.NoError(t, rt.Sync())
}
