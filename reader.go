package trichan

import "fmt"

// Reader is the consuming side of a channel. Each Get adopts the freshest
// published cell, if any, and returns a copy of the reader-owned value.
//
// A Reader is not safe for concurrent use. It may be handed off to another
// goroutine between calls.
type Reader[T any] struct {
	_  noCopy
	ch *channel[T]
	// No cached cell index: a consume transition can move the reader's
	// cell on any Get, so the index is derived from the status word each
	// time.
}

// Get returns the most recently published value.
//
// When the fresh flag is set, Get first applies the consume transition
// (reader and storage roles exchange cells, fresh cleared) via a single
// CompareAndSwap, then reads the newly adopted cell. When nothing is fresh
// it is one atomic load plus the copy.
//
// Every value returned is a complete publication: the writer finished
// mutating the cell before Flush made it reachable, and the swap ordering
// makes those writes visible here. Values published between two Gets are
// skipped, not queued.
func (r *Reader[T]) Get() T {
	c := r.ch
	for {
		s := c.status.Load()
		if s&freshFlag == 0 {
			// Only a publish can change the status concurrently, and a
			// publish never moves the reader's cell, so reading it from
			// a stale code is still correct.
			return c.cells[readerCell[statusCode(s)]].v
		}
		next := consumeStatus(s)
		if c.status.CompareAndSwap(s, next) {
			return c.cells[readerCell[statusCode(next)]].v
		}
	}
}

// NewWriter attaches a replacement Writer if the writer role is vacant.
// It reports false, handing back no writer, when the role is occupied.
// Symmetric to Writer.NewReader: one CompareAndSwap, at most one winner.
func (r *Reader[T]) NewWriter() (*Writer[T], bool) {
	if !r.ch.peerGone.CompareAndSwap(true, false) {
		return nil, false
	}
	return &Writer[T]{
		ch:      r.ch,
		scratch: writerCell[statusCode(r.ch.status.Load())],
	}, true
}

// Close departs the reader role. If the writer role is already vacant the
// shared block is destroyed; otherwise it stays alive for the surviving
// writer. Close is idempotent; any other use of the Reader after Close is a
// bug.
func (r *Reader[T]) Close() {
	c := r.ch
	if c == nil {
		return
	}
	r.ch = nil
	if c.peerGone.Swap(true) {
		c.destroy()
	}
}

// String formats the current role assignment for debugging.
// It never triggers a consume transition.
func (r *Reader[T]) String() string {
	s := r.ch.status.Load()
	code := statusCode(s)
	return fmt.Sprintf("trichan.Reader{w:%d s:%d r:%d fresh:%v}",
		writerCell[code], storageCell[code], readerCell[code], s&freshFlag != 0)
}
