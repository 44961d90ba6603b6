package heap

import "github.com/colinmarc/svalue/internal/errs"

// Get looks up key (a string for objects, an int for arrays) and returns
// the sentinel null Value with no error when the key/index is absent —
// matching the buffer representation's get so both
// representations give a single "missing means null" contract. Get
// returns a type error only when key's kind cannot address v's kind at
// all (e.g. a string key against an array).
func (v Value) Get(key any) (Value, error) {
	switch k := key.(type) {
	case string:
		if v.k != kObject {
			return Null(), errs.Typef("Get", "value is %s, not an object", v.k)
		}
		i := v.obj.indexOf(k)
		if i < 0 {
			return Null(), nil
		}
		return v.obj.fields[i].val, nil
	case int:
		if v.k != kArray {
			return Null(), errs.Typef("Get", "value is %s, not an array", v.k)
		}
		if k < 0 || k >= len(v.arr.vals) {
			return Null(), nil
		}
		return v.arr.vals[k], nil
	default:
		return Null(), errs.Typef("Get", "unsupported key type %T", key)
	}
}

// GetView is Get's heterogeneous-lookup counterpart for objects: it
// queries by a borrowed []byte without constructing a temporary
// heap-string key.
func (v Value) GetView(key []byte) (Value, error) {
	if v.k != kObject {
		return Null(), errs.Typef("GetView", "value is %s, not an object", v.k)
	}
	i := v.obj.indexOfBytes(key)
	if i < 0 {
		return Null(), nil
	}
	return v.obj.fields[i].val, nil
}

// At is Get's strict counterpart: a missing key or out-of-range index is
// an out-of-range error instead of a null sentinel.
func (v Value) At(key any) (Value, error) {
	switch k := key.(type) {
	case string:
		if v.k != kObject {
			return Null(), errs.Typef("At", "value is %s, not an object", v.k)
		}
		i := v.obj.indexOf(k)
		if i < 0 {
			return Null(), errs.Rangef("At", "key %q not found", k)
		}
		return v.obj.fields[i].val, nil
	case int:
		if v.k != kArray {
			return Null(), errs.Typef("At", "value is %s, not an array", v.k)
		}
		if k < 0 || k >= len(v.arr.vals) {
			return Null(), errs.Rangef("At", "index %d out of range", k)
		}
		return v.arr.vals[k], nil
	default:
		return Null(), errs.Typef("At", "unsupported key type %T", key)
	}
}

// HasKey reports whether v is an object containing key.
func (v Value) HasKey(key string) bool {
	return v.k == kObject && v.obj.indexOf(key) >= 0
}

// HasKeyView is HasKey's heterogeneous-lookup counterpart.
func (v Value) HasKeyView(key []byte) bool {
	return v.k == kObject && v.obj.indexOfBytes(key) >= 0
}
