package trichan

import (
	"sync/atomic"

	"github.com/llxisdsh/pb"
)

// Hub is a keyed rendezvous point for handing channel handles to producer
// and consumer goroutines that do not share a constructor call site.
//
// The first touch of a key creates its channel; each side's handle is then
// handed out at most once. The Hub only brokers this initial handoff — it
// keeps no reference afterwards, and replacement after a Close goes through
// the handles' own NewReader/NewWriter protocol.
//
// Usage:
//
//	var hub trichan.Hub[string, Sample]
//	// producer
//	w, _ := hub.Writer("telemetry/gps", Sample{})
//	// consumer, any other goroutine
//	r, _ := hub.Reader("telemetry/gps", Sample{})
//
// The zero Hub is ready to use.
type Hub[K comparable, T any] struct {
	m pb.MapOf[K, *station[T]]
}

// station parks the two unclaimed handles of one key's channel.
type station[T any] struct {
	w atomic.Pointer[Writer[T]]
	r atomic.Pointer[Reader[T]]
}

// station returns the station for key, creating the channel on first touch.
// ProcessEntry serializes per key, so creation is exactly-once even under
// concurrent first touches.
func (h *Hub[K, T]) station(key K, seed T) *station[T] {
	var st *station[T]
	h.m.ProcessEntry(key,
		func(l *pb.EntryOf[K, *station[T]]) (*pb.EntryOf[K, *station[T]], *station[T], bool) {
			if l != nil {
				st = l.Value
				return l, st, true
			}
			w, r := New(seed)
			st = &station[T]{}
			st.w.Store(w)
			st.r.Store(r)
			return &pb.EntryOf[K, *station[T]]{Value: st}, st, false
		},
	)
	return st
}

// Writer claims the writer handle for key, creating the channel if this is
// the key's first touch (seeded with seed). It reports false if the writer
// handle was already claimed. The claim is an atomic swap; of any number of
// racing claimants exactly one receives the handle.
func (h *Hub[K, T]) Writer(key K, seed T) (*Writer[T], bool) {
	w := h.station(key, seed).w.Swap(nil)
	return w, w != nil
}

// Reader claims the reader handle for key, symmetric to Writer.
func (h *Hub[K, T]) Reader(key K, seed T) (*Reader[T], bool) {
	r := h.station(key, seed).r.Swap(nil)
	return r, r != nil
}
