// Package refcount implements a small reference-counting contract: a
// counter that supports incref/decref-with-last-one-frees/use_count, with
// both an atomic and a non-atomic implementation so that single-threaded
// callers pay no synchronization cost while multi-threaded callers opt
// into safety. There is no generic parameter over the counting strategy
// the way a C++ template might express it; the equivalent here is a
// small interface chosen at construction time by whichever package
// builds the owning handle: heap's array and object containers build on
// NewPlain since a heap.Value is never shared across goroutines, while
// buffer.Handle builds on NewAtomic since it backs a memory-mapped image
// that multiple goroutines may hold and release concurrently.
package refcount

import "sync/atomic"

// Counter is the refcount adapter contract: construction starts a new
// counter at 1 (the first owner); Retain records an additional owner;
// Release records a departing owner and reports whether it was the last
// one (so the caller can free the backing storage); Count reports the
// current owner count for copy-on-write threshold checks.
type Counter interface {
	Retain()
	Release() (last bool)
	Count() int32
}

// plain is a non-atomic Counter for single-threaded use: no live value
// built on it is shared across goroutines.
type plain struct{ n int32 }

// NewPlain returns a Counter starting at 1, with no synchronization. Use
// only when every alias of the owning handle is confined to one goroutine.
func NewPlain() Counter { return &plain{n: 1} }

func (p *plain) Retain()          { p.n++ }
func (p *plain) Release() bool    { p.n--; return p.n <= 0 }
func (p *plain) Count() int32     { return p.n }

// atomicCounter is an atomic Counter safe to retain/release/observe from
// any number of goroutines concurrently, at the cost of an atomic op per
// call.
type atomicCounter struct{ n atomic.Int32 }

// NewAtomic returns a Counter starting at 1, using atomic increment and
// decrement. Use when the owning handle (a buffer image, typically) may be
// read from multiple goroutines concurrently.
func NewAtomic() Counter {
	c := &atomicCounter{}
	c.n.Store(1)
	return c
}

func (a *atomicCounter) Retain()       { a.n.Add(1) }
func (a *atomicCounter) Release() bool { return a.n.Add(-1) <= 0 }
func (a *atomicCounter) Count() int32  { return a.n.Load() }
