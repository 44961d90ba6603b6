package heap

import "github.com/colinmarc/svalue/internal/errs"

// Cursor iterates over an array or object's elements in storage order
// (insertion order for both kinds — heap objects do not reorder on
// insert). Reverse walks the same range back to front. This mirrors the
// buffer package's Cursor so both representations offer one iteration
// shape.
type Cursor struct {
	v       Value
	n       int
	i       int
	reverse bool
}

// NewCursor returns a forward cursor over v's elements. Fails with a type
// error if v is not an array or object.
func NewCursor(v Value) (*Cursor, error) {
	if !v.IsAggregate() {
		return nil, errs.Typef("NewCursor", "value is %s, not an array or object", v.Kind())
	}
	n, _ := v.Size()
	return &Cursor{v: v, n: n}, nil
}

// Reverse flips the cursor's walk direction and resets it to the new
// starting end.
func (c *Cursor) Reverse() *Cursor {
	c.reverse = !c.reverse
	c.i = 0
	return c
}

// Len returns the number of elements the cursor walks.
func (c *Cursor) Len() int { return c.n }

// Done reports whether the cursor has exhausted its range.
func (c *Cursor) Done() bool { return c.i >= c.n }

func (c *Cursor) index() int {
	if c.reverse {
		return c.n - 1 - c.i
	}
	return c.i
}

// Next advances the cursor, returning false once Done.
func (c *Cursor) Next() bool {
	if c.Done() {
		return false
	}
	c.i++
	return !c.Done()
}

// Value returns the element at the cursor's current position.
func (c *Cursor) Value() (Value, error) {
	idx := c.index()
	if idx < 0 || idx >= c.n {
		return Null(), errs.Rangef("Value", "cursor is out of range")
	}
	if c.v.IsArray() {
		return c.v.arr.vals[idx], nil
	}
	return c.v.obj.fields[idx].val, nil
}

// Key returns the current position's key. Fails with a type error for an
// array cursor, which has no keys.
func (c *Cursor) Key() (string, error) {
	if !c.v.IsObject() {
		return "", errs.Typef("Key", "cursor is over an array, which has no keys")
	}
	idx := c.index()
	if idx < 0 || idx >= c.n {
		return "", errs.Rangef("Key", "cursor is out of range")
	}
	return c.v.obj.fields[idx].key.stringView(), nil
}

// Fields returns a snapshot copy of an object's key/value pairs in
// storage order. Used by the codec package to sort fields for the wire
// layout, and a convenient escape hatch for callers who want a plain
// slice instead of stepping a Cursor.
func (v Value) Fields() ([]Pair, error) {
	if v.k != kObject {
		return nil, errs.Typef("Fields", "value is %s, not an object", v.k)
	}
	out := make([]Pair, len(v.obj.fields))
	for i, f := range v.obj.fields {
		out[i] = Pair{Key: f.key.stringView(), Value: f.val}
	}
	return out, nil
}

// Elements returns a snapshot copy of an array's elements in order.
func (v Value) Elements() ([]Value, error) {
	if v.k != kArray {
		return nil, errs.Typef("Elements", "value is %s, not an array", v.k)
	}
	out := make([]Value, len(v.arr.vals))
	copy(out, v.arr.vals)
	return out, nil
}
