package buffer

import (
	"github.com/colinmarc/svalue/internal/errs"
)

// At returns the element at index i, or an out-of-range error if i is
// outside [0, len). Fails with a type error if v is not an array.
func (v Value) At(i int) (Value, error) {
	if !v.IsArray() {
		return Value{}, errs.Typef("At", "value is %s, not an array", v.Kind())
	}
	count, offsetWidth, tableStart, err := aggregateHeader(v.data)
	if err != nil {
		return Value{}, err
	}
	if i < 0 || i >= count {
		return Value{}, errs.Rangef("At", "index %d out of range (length %d)", i, count)
	}
	off, err := elementOffset(v.data, tableStart, offsetWidth, i)
	if err != nil {
		return Value{}, err
	}
	return Decode(v.data[off:])
}

// Get is At's "missing means null" counterpart, mirroring heap.Value.Get
// so both representations share one contract for out-of-range lookups.
func (v Value) Get(i int) (Value, error) {
	if !v.IsArray() {
		return Value{}, errs.Typef("Get", "value is %s, not an array", v.Kind())
	}
	elem, err := v.At(i)
	if err != nil && errs.Range.Is(err) {
		return Null(), nil
	}
	return elem, err
}
