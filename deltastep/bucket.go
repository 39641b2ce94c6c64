package deltastep

import "sync/atomic"

// bucket is an array-backed vertex sequence with a fixed capacity, a
// wait-free concurrent push, and lazy deletion via tombstones.
//
// Insertion is the hot operation (every relaxation may migrate a
// vertex); deletion is comparatively rare and never needs to reclaim
// space mid-epoch, so a removed entry is simply overwritten with the
// tombstone sentinel. clear is not safe concurrently with push; the
// engine only clears between barriered phases.
//
// Capacity |V| suffices: distances only decrease, so the absolute
// bucket index of a vertex never grows. A vertex therefore enters a
// given non-current bucket at most once per epoch, and re-enters the
// current bucket only after the bucket was cleared.
type bucket struct {
	entries []int
	tail    atomic.Int64
}

func newBucket(capacity int) *bucket {
	return &bucket{entries: make([]int, capacity)}
}

// push appends v and returns its slot index. Wait-free: the tail
// fetch-add reserves the slot, the store publishes the value. The
// value becomes visible to readers at the next phase barrier.
func (b *bucket) push(v int) int {
	idx := int(b.tail.Add(1)) - 1
	b.entries[idx] = v

	return idx
}

// read returns the vertex at slot i, or tombstone. Unsynchronized;
// callers read only snapshots published by a barrier.
func (b *bucket) read(i int) int { return b.entries[i] }

// markRemoved tombstones slot i. Single writer per slot: only the L2
// worker that owns the resident vertex may call this.
func (b *bucket) markRemoved(i int) { b.entries[i] = tombstone }

// clear resets the bucket to empty. Not safe concurrently with push.
func (b *bucket) clear() { b.tail.Store(0) }

// size returns the number of slots in use, tombstones included.
func (b *bucket) size() int { return int(b.tail.Load()) }

func (b *bucket) empty() bool { return b.tail.Load() == 0 }
