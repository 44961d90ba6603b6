package heap

import "github.com/colinmarc/svalue/internal/refcount"

// array is the shared, growable container backing an array-kind Value.
type array struct {
	rc   refcount.Counter
	vals []Value
}

// newArray builds a freshly owned array, retaining each element as a new
// owner of whatever container it holds (the caller's own copies of those
// elements remain valid and independently owned).
func newArray(vals ...Value) *array {
	a := &array{rc: refcount.NewPlain(), vals: make([]Value, len(vals))}
	for i, v := range vals {
		a.vals[i] = v.retain()
	}
	return a
}

// clone deep-enough-copies a for copy-on-write: the element slice is
// copied, and each element is retained as a new owner of its own nested
// container, if any. Descendants are not recursively cloned — they stay
// shared until themselves mutated.
func (a *array) clone() *array {
	na := &array{rc: refcount.NewPlain(), vals: make([]Value, len(a.vals), cap(a.vals))}
	for i, v := range a.vals {
		na.vals[i] = v.retain()
	}
	return na
}

func (a *array) len() int {
	if a == nil {
		return 0
	}
	return len(a.vals)
}

// NewArray returns an array-kind Value holding the given elements, in
// order.
func NewArray(vals ...Value) Value {
	return Value{k: kArray, arr: newArray(vals...)}
}
