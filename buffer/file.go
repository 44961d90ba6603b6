package buffer

import (
	"github.com/colinmarc/svalue/internal/mmap"
	"github.com/colinmarc/svalue/internal/refcount"
)

// OpenFile memory-maps the finalized image at path and decodes its root
// value. The returned closeFn must outlive every Value derived from it
// (every accessor here is a zero-copy view into the mapped bytes); calling
// it invalidates those views. Use this when the mapping has exactly one
// owner tracking its own lifetime; for an image handed to multiple
// goroutines, use OpenShared instead.
func OpenFile(path string) (v Value, closeFn func() error, err error) {
	data, closeFn, err := mmap.Open(path)
	if err != nil {
		return Value{}, nil, err
	}
	v, err = Decode(data)
	if err != nil {
		closeFn()
		return Value{}, nil, err
	}
	return v, closeFn, nil
}

// Handle is a refcounted owner of a memory-mapped image shared across
// goroutines: each goroutine holding a reference calls Retain before
// handing its own copy off, and Release when done, and the mapping is
// unmapped once the last reference is released rather than on a single
// caller-tracked closeFn.
type Handle struct {
	rc    refcount.Counter
	close func() error
}

// OpenShared memory-maps the finalized image at path behind an
// atomically refcounted Handle and decodes its root value. Reads of the
// returned Value are safe from any number of goroutines concurrently,
// provided each one holding a copy of the Value also holds a Retain'd
// reference to the Handle.
func OpenShared(path string) (Value, *Handle, error) {
	data, closeFn, err := mmap.Open(path)
	if err != nil {
		return Value{}, nil, err
	}
	v, err := Decode(data)
	if err != nil {
		closeFn()
		return Value{}, nil, err
	}
	return v, &Handle{rc: refcount.NewAtomic(), close: closeFn}, nil
}

// Retain registers another owner of h's mapping and returns h, so a
// reference can be handed to a new goroutine alongside its Value:
//
//	go worker(v, h.Retain())
func (h *Handle) Retain() *Handle {
	h.rc.Retain()
	return h
}

// Release records that one owner is done with h's mapping, unmapping it
// once the last owner has released. Safe to call concurrently with
// Retain and Release from other goroutines.
func (h *Handle) Release() error {
	if h.rc.Release() {
		return h.close()
	}
	return nil
}
