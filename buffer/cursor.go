package buffer

import "github.com/colinmarc/svalue/internal/errs"

// Cursor iterates over an array or object's elements in the order their
// offset table stores them: insertion order for arrays, sorted key order
// for objects. A Cursor is forward-only from wherever it
// starts; Reverse walks the same range back to front.
type Cursor struct {
	v           Value
	count       int
	offsetWidth int
	tableStart  int
	i           int
	reverse     bool
}

// NewCursor returns a forward cursor over v's elements. Fails with a type
// error if v is not an array or object.
func NewCursor(v Value) (*Cursor, error) {
	if !v.IsAggregate() {
		return nil, errs.Typef("NewCursor", "value is %s, not an array or object", v.Kind())
	}
	count, offsetWidth, tableStart, err := aggregateHeader(v.data)
	if err != nil {
		return nil, err
	}
	return &Cursor{v: v, count: count, offsetWidth: offsetWidth, tableStart: tableStart}, nil
}

// Reverse flips the cursor's walk direction and resets it to the new
// starting end.
func (c *Cursor) Reverse() *Cursor {
	c.reverse = !c.reverse
	c.i = 0
	return c
}

// Len returns the number of elements the cursor walks.
func (c *Cursor) Len() int { return c.count }

// Done reports whether the cursor has exhausted its range.
func (c *Cursor) Done() bool { return c.i >= c.count }

func (c *Cursor) index() int {
	if c.reverse {
		return c.count - 1 - c.i
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

// Value returns the element at the cursor's current position (an array
// element, or an object field's value). Call after a successful Next, or
// before the first Next to read position 0.
func (c *Cursor) Value() (Value, error) {
	idx := c.index()
	if idx < 0 || idx >= c.count {
		return Value{}, errs.Rangef("Value", "cursor is out of range")
	}
	if c.v.IsArray() {
		off, err := elementOffset(c.v.data, c.tableStart, c.offsetWidth, idx)
		if err != nil {
			return Value{}, err
		}
		return Decode(c.v.data[off:])
	}
	_, val, err := c.v.KeyAt(idx)
	return val, err
}

// Key returns the current position's key. Fails with a type error for an
// array cursor, which has no keys.
func (c *Cursor) Key() (string, error) {
	if !c.v.IsObject() {
		return "", errs.Typef("Key", "cursor is over an array, which has no keys")
	}
	idx := c.index()
	if idx < 0 || idx >= c.count {
		return "", errs.Rangef("Key", "cursor is out of range")
	}
	key, _, err := c.v.KeyAt(idx)
	return key, err
}
