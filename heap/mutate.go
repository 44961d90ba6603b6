package heap

import (
	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/wire"
)

// Insert: a string key inserts-or-overwrites a field (forcing v to an
// object if it was null); a non-negative integer key no greater than the
// current length splices an element into an array (forcing v to an array
// if it was null); any other combination fails with a type error. It
// returns the position of the affected element.
//
// Copy-on-write runs before the key-length check, so a rejected insert on
// a shared receiver may still leave behind a now-unshared (but otherwise
// unchanged) clone.
func (v *Value) Insert(key any, val Value) (int, error) {
	switch k := key.(type) {
	case string:
		if v.k != kNull && v.k != kObject {
			return 0, errs.Typef("Insert", "value is %s, cannot insert by string key", v.k)
		}
		ensureUniqueObject(v, defaultCOWThreshold)
		if len(k) > wire.ObjectKeyMaxLen {
			return 0, errs.Invalidf("Insert", "key length %d exceeds maximum %d", len(k), wire.ObjectKeyMaxLen)
		}
		if i := v.obj.indexOf(k); i >= 0 {
			v.obj.fields[i].val.release()
			v.obj.fields[i].val = val.retain()
			return i, nil
		}
		v.obj.fields = append(v.obj.fields, field{key: newString(k).retain(), val: val.retain()})
		return len(v.obj.fields) - 1, nil

	case int:
		if v.k != kNull && v.k != kArray {
			return 0, errs.Typef("Insert", "value is %s, cannot insert by integer key", v.k)
		}
		if k < 0 {
			return 0, errs.Typef("Insert", "negative array index %d", k)
		}
		ensureUniqueArray(v, defaultCOWThreshold)
		if k > len(v.arr.vals) {
			return 0, errs.Typef("Insert", "index %d exceeds array length %d", k, len(v.arr.vals))
		}
		v.arr.vals = append(v.arr.vals, Value{})
		copy(v.arr.vals[k+1:], v.arr.vals[k:])
		v.arr.vals[k] = val.retain()
		return k, nil

	default:
		return 0, errs.Typef("Insert", "unsupported key type %T", key)
	}
}

// Set: the key must already exist (an out-of-range error otherwise).
// Same copy-on-write rules as Insert.
func (v *Value) Set(key any, val Value) (int, error) {
	switch k := key.(type) {
	case string:
		if v.k != kObject {
			return 0, errs.Typef("Set", "value is %s, not an object", v.k)
		}
		ensureUniqueObject(v, defaultCOWThreshold)
		i := v.obj.indexOf(k)
		if i < 0 {
			return 0, errs.Rangef("Set", "key %q not found", k)
		}
		v.obj.fields[i].val.release()
		v.obj.fields[i].val = val.retain()
		return i, nil

	case int:
		if v.k != kArray {
			return 0, errs.Typef("Set", "value is %s, not an array", v.k)
		}
		ensureUniqueArray(v, defaultCOWThreshold)
		if k < 0 || k >= len(v.arr.vals) {
			return 0, errs.Rangef("Set", "index %d out of range", k)
		}
		v.arr.vals[k].release()
		v.arr.vals[k] = val.retain()
		return k, nil

	default:
		return 0, errs.Typef("Set", "unsupported key type %T", key)
	}
}

// Erase removes by string key or integer index and returns the position
// following the removed element (or the container's length if none). An
// out-of-range index, or a key absent from an object, is a silent no-op
// that returns the current length unchanged, not an error.
func (v *Value) Erase(key any) (int, error) {
	switch k := key.(type) {
	case string:
		if v.k != kObject {
			return 0, errs.Typef("Erase", "value is %s, not an object", v.k)
		}
		ensureUniqueObject(v, defaultCOWThreshold)
		i := v.obj.indexOf(k)
		if i < 0 {
			return len(v.obj.fields), nil
		}
		v.obj.fields[i].key.release()
		v.obj.fields[i].val.release()
		v.obj.fields = append(v.obj.fields[:i], v.obj.fields[i+1:]...)
		return i, nil

	case int:
		if v.k != kArray {
			return 0, errs.Typef("Erase", "value is %s, not an array", v.k)
		}
		ensureUniqueArray(v, defaultCOWThreshold)
		if k < 0 || k >= len(v.arr.vals) {
			return len(v.arr.vals), nil
		}
		v.arr.vals[k].release()
		v.arr.vals = append(v.arr.vals[:k], v.arr.vals[k+1:]...)
		return k, nil

	default:
		return 0, errs.Typef("Erase", "unsupported key type %T", key)
	}
}

// PushBack appends val to an array, forcing v from null to an empty array
// first if needed.
func (v *Value) PushBack(val Value) (int, error) {
	if v.k != kNull && v.k != kArray {
		return 0, errs.Typef("PushBack", "value is %s, not an array", v.k)
	}
	ensureUniqueArray(v, defaultCOWThreshold)
	v.arr.vals = append(v.arr.vals, val.retain())
	return len(v.arr.vals) - 1, nil
}

// PushFront prepends val to an array, forcing v from null to an empty
// array first if needed.
func (v *Value) PushFront(val Value) (int, error) {
	if v.k != kNull && v.k != kArray {
		return 0, errs.Typef("PushFront", "value is %s, not an array", v.k)
	}
	ensureUniqueArray(v, defaultCOWThreshold)
	v.arr.vals = append(v.arr.vals, Value{})
	copy(v.arr.vals[1:], v.arr.vals)
	v.arr.vals[0] = val.retain()
	return 0, nil
}

// PopBack removes and returns the last array element, or an out-of-range
// error on an empty array.
func (v *Value) PopBack() (Value, error) {
	if v.k != kArray {
		return Null(), errs.Typef("PopBack", "value is %s, not an array", v.k)
	}
	ensureUniqueArray(v, defaultCOWThreshold)
	n := len(v.arr.vals)
	if n == 0 {
		return Null(), errs.Rangef("PopBack", "array is empty")
	}
	out := v.arr.vals[n-1]
	v.arr.vals[n-1] = Value{}
	v.arr.vals = v.arr.vals[:n-1]
	return out, nil
}

// PopFront removes and returns the first array element, or an
// out-of-range error on an empty array.
func (v *Value) PopFront() (Value, error) {
	if v.k != kArray {
		return Null(), errs.Typef("PopFront", "value is %s, not an array", v.k)
	}
	ensureUniqueArray(v, defaultCOWThreshold)
	if len(v.arr.vals) == 0 {
		return Null(), errs.Rangef("PopFront", "array is empty")
	}
	out := v.arr.vals[0]
	copy(v.arr.vals, v.arr.vals[1:])
	v.arr.vals[len(v.arr.vals)-1] = Value{}
	v.arr.vals = v.arr.vals[:len(v.arr.vals)-1]
	return out, nil
}

// Clear empties an object or array in place, or fails with a type error
// for any other kind.
func (v *Value) Clear() error {
	switch v.k {
	case kArray:
		ensureUniqueArray(v, defaultCOWThreshold)
		for i := range v.arr.vals {
			v.arr.vals[i].release()
			v.arr.vals[i] = Value{}
		}
		v.arr.vals = v.arr.vals[:0]
	case kObject:
		ensureUniqueObject(v, defaultCOWThreshold)
		for i := range v.obj.fields {
			v.obj.fields[i].key.release()
			v.obj.fields[i].val.release()
		}
		v.obj.fields = v.obj.fields[:0]
	default:
		return errs.Typef("Clear", "value is %s, not an array or object", v.k)
	}
	return nil
}

// AddField is object-only sugar over Insert.
func (v *Value) AddField(name string, val Value) (int, error) {
	return v.Insert(name, val)
}

// RemoveField is object-only sugar over Erase.
func (v *Value) RemoveField(name string) (int, error) {
	return v.Erase(name)
}

// Inject returns a new object equal to v with pairs inserted or
// overwriting; v itself is unchanged.
func (v Value) Inject(pairs ...Pair) (Value, error) {
	if v.k != kObject {
		return Null(), errs.Typef("Inject", "value is %s, not an object", v.k)
	}
	no := v.obj.clone()
	for _, p := range pairs {
		if len(p.Key) > wire.ObjectKeyMaxLen {
			return Null(), errs.Invalidf("Inject", "key length %d exceeds maximum %d", len(p.Key), wire.ObjectKeyMaxLen)
		}
		if i := no.indexOf(p.Key); i >= 0 {
			no.fields[i].val.release()
			no.fields[i].val = p.Value.retain()
			continue
		}
		no.fields = append(no.fields, field{key: newString(p.Key).retain(), val: p.Value.retain()})
	}
	return Value{k: kObject, obj: no}, nil
}

// Project returns a new object retaining only the entries of v whose key
// appears in keys; keys absent from v are silently skipped.
func (v Value) Project(keys ...string) (Value, error) {
	if v.k != kObject {
		return Null(), errs.Typef("Project", "value is %s, not an object", v.k)
	}
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	no := newObject()
	for _, f := range v.obj.fields {
		if _, ok := want[f.key.stringView()]; ok {
			no.fields = append(no.fields, field{key: f.key.retain(), val: f.val.retain()})
		}
	}
	return Value{k: kObject, obj: no}, nil
}

// GetNested splits path on sep and walks nested objects, yielding null
// for any missing segment.
func (v Value) GetNested(path string, sep byte) Value {
	cur := v
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == sep {
			seg := path[start:i]
			start = i + 1
			if cur.k != kObject {
				return Null()
			}
			idx := cur.obj.indexOf(seg)
			if idx < 0 {
				return Null()
			}
			cur = cur.obj.fields[idx].val
		}
	}
	return cur
}
