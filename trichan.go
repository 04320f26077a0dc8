// Package trichan provides a wait-free, single-writer/single-reader
// "latest value wins" channel built on triple buffering.
//
// A Writer repeatedly fills a private cell and publishes it with Flush; a
// Reader always observes the most recently completed publication without
// blocking the writer and without the writer blocking on it. Intermediate
// values the reader never polled are overwritten silently: this is a
// freshest-snapshot primitive, not a queue.
package trichan

import (
	"sync/atomic"

	"github.com/llxisdsh/trichan/internal/opt"
)

// channel is the heap block shared by one Writer and one Reader.
//
// Three cells hold independent copies of the payload. At every instant each
// cell has exactly one role: writer-owned (mutable scratch), storage (last
// published value), or reader-owned (snapshot being read). The status word
// encodes which cell plays which role; see state.go.
//
// The block is never owned by a single handle. It is reclaimed through the
// peerGone rendezvous: each departing side swaps the flag to true, and the
// side that observes true was already set is the last one standing and
// destroys the block.
type channel[T any] struct {
	cells [3]cell[T]

	// status holds the permutation code and the fresh flag. Mutated only
	// via CompareAndSwap by Flush (publish) and Get (consume).
	status atomic.Uint32

	// peerGone is true iff exactly one role is currently unoccupied.
	// While both handles are live it is false; both vacant is never a
	// resting state because the second departure destroys the block.
	peerGone atomic.Bool

	// freed counts destroy calls. The protocol guarantees exactly one.
	freed atomic.Uint32
}

// cell is one payload slot, kept at least a cache line away from its
// neighbors (and from the status word) on architectures where opt enables
// padding, so writer mutation and reader polling do not false-share.
type cell[T any] struct {
	v T
	_ opt.CellPad_
}

// New creates a channel seeded with copies of seed in all three cells and
// returns its two handles.
//
// Birth state: the writer owns cell 0, storage is cell 1, the reader owns
// cell 2, nothing is fresh, and both roles are occupied.
//
// Either handle may be transferred to another goroutine, but each handle
// must be used by one goroutine at a time. The payload crosses goroutines
// by copy; if T contains pointers, the pointed-to data is shared between
// all three cells and both sides, and must be treated as immutable.
func New[T any](seed T) (*Writer[T], *Reader[T]) {
	c := &channel[T]{}
	c.cells[0].v = seed
	c.cells[1].v = seed
	c.cells[2].v = seed
	// Zero status is permutation code 0 with fresh clear; zero peerGone
	// means both roles occupied. Nothing else to initialize.
	return &Writer[T]{ch: c, scratch: writerCell[0]}, &Reader[T]{ch: c}
}

// destroy releases the payload cells and records the deallocation.
// Reached only when both roles have departed, so no handle can touch the
// cells concurrently.
func (c *channel[T]) destroy() {
	var zero T
	for i := range c.cells {
		c.cells[i].v = zero
	}
	c.freed.Add(1)
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
