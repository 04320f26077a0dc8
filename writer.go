package trichan

import "fmt"

// Writer is the publishing side of a channel. It owns one cell as a mutable
// scratch buffer; Flush publishes the scratch and adopts a new one.
//
// A Writer is not safe for concurrent use. It may be handed off to another
// goroutine between calls.
//
// Usage:
//
//	w, r := trichan.New(0)
//	*w.Value() = 42
//	w.Flush()
//	_ = r.Get() // 42
type Writer[T any] struct {
	_  noCopy
	ch *channel[T]

	// scratch caches the index of the writer-owned cell. Only Flush moves
	// the writer's role, so the cache is refreshed there and nowhere else.
	scratch int
}

// Value returns a pointer to the scratch cell for in-place mutation.
// The pointer is valid until the next Flush or Close; the reader can never
// observe the cell behind it.
func (w *Writer[T]) Value() *T {
	return &w.ch.cells[w.scratch].v
}

// Set stores v into the scratch cell. Shorthand for *w.Value() = v;
// the value is not visible to the reader until Flush.
func (w *Writer[T]) Set(v T) {
	w.ch.cells[w.scratch].v = v
}

// Flush publishes the scratch cell: the writer and storage roles exchange
// cells and the fresh flag is set, all in one CompareAndSwap. The previous
// storage cell becomes the new scratch. Its content is stale; callers that
// do partial in-place updates must rewrite the value fully before the next
// Flush.
//
// Flush never blocks. The CAS can only be contended by the reader's consume
// transition, which never moves the writer's cell, so the loop retries at
// most a few times and waits on nothing.
func (w *Writer[T]) Flush() {
	c := w.ch
	for {
		s := c.status.Load()
		next := publishStatus(s)
		if c.status.CompareAndSwap(s, next) {
			w.scratch = writerCell[statusCode(next)]
			return
		}
	}
}

// NewReader attaches a replacement Reader if the reader role is vacant.
// It reports false, handing back no reader, when the role is occupied.
// The claim is a single CompareAndSwap on the vacancy flag, so of any
// number of racing claimants exactly one wins.
func (w *Writer[T]) NewReader() (*Reader[T], bool) {
	if !w.ch.peerGone.CompareAndSwap(true, false) {
		return nil, false
	}
	return &Reader[T]{ch: w.ch}, true
}

// Close departs the writer role. If the reader role is already vacant this
// was the last handle and the shared block is destroyed; otherwise the block
// stays alive for the surviving reader, which may attach a replacement via
// NewWriter. Close is idempotent; any other use of the Writer after Close is
// a bug.
func (w *Writer[T]) Close() {
	c := w.ch
	if c == nil {
		return
	}
	w.ch = nil
	if c.peerGone.Swap(true) {
		c.destroy()
	}
}

// String formats the current role assignment for debugging.
func (w *Writer[T]) String() string {
	s := w.ch.status.Load()
	code := statusCode(s)
	return fmt.Sprintf("trichan.Writer{w:%d s:%d r:%d fresh:%v}",
		writerCell[code], storageCell[code], readerCell[code], s&freshFlag != 0)
}
