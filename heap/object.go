package heap

import (
	"github.com/colinmarc/svalue/internal/refcount"
	"github.com/colinmarc/svalue/internal/strview"
)

// field is one key/value pair in an object's insertion-ordered storage.
// Keys are stored as string-kind Values (not plain Go strings) so that
// an object's key cursor can hand out heap-strings directly, without a
// string-to-Value conversion on every iteration.
type field struct {
	key Value
	val Value
}

// object is the shared, insertion-ordered container backing an
// object-kind Value. Objects are small in practice (registry-hive-style
// and JSON-shaped documents rarely have more than a few dozen fields at
// one level), so lookup is a linear scan using the heterogeneous,
// allocation-free byte comparison in internal/strview rather than a Go
// map keyed by string — a map would force callers to build a temporary
// owned string for every []byte-keyed lookup, which defeats the point
// of a zero-copy, heterogeneous lookup API.
type object struct {
	rc     refcount.Counter
	fields []field
}

func newObject() *object {
	return &object{rc: refcount.NewPlain()}
}

// clone deep-enough-copies o for copy-on-write: the field slice is
// copied, and each field's key and value are retained as new owners of
// their own nested containers, if any.
func (o *object) clone() *object {
	no := &object{rc: refcount.NewPlain(), fields: make([]field, len(o.fields), cap(o.fields))}
	for i, f := range o.fields {
		no.fields[i] = field{key: f.key.retain(), val: f.val.retain()}
	}
	return no
}

func (o *object) len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// indexOf returns the position of key in insertion order, or -1.
func (o *object) indexOf(key string) int {
	for i := range o.fields {
		if o.fields[i].key.stringView() == key {
			return i
		}
	}
	return -1
}

// indexOfBytes is indexOf's heterogeneous-lookup counterpart: it compares
// byte-for-byte against each field's stored key without building a
// temporary owned string for key.
func (o *object) indexOfBytes(key []byte) int {
	for i := range o.fields {
		fb := o.fields[i].key.stringBytes()
		if strview.EqualBytes(strview.String(fb), key) {
			return i
		}
	}
	return -1
}

// NewObject returns an empty object-kind Value.
func NewObject() Value {
	return Value{k: kObject, obj: newObject()}
}

// Pair is one key/value argument to NewObjectFrom, Inject, and the object
// constructors in the convert package.
type Pair struct {
	Key   string
	Value Value
}

// NewObjectFrom returns an object-kind Value built from pairs, in order.
// A later pair with a duplicate key overwrites an earlier one, matching
// insert's insert-or-overwrite semantics.
func NewObjectFrom(pairs ...Pair) Value {
	o := newObject()
	for _, p := range pairs {
		if i := o.indexOf(p.Key); i >= 0 {
			o.fields[i].val.release()
			o.fields[i].val = p.Value.retain()
			continue
		}
		o.fields = append(o.fields, field{key: newString(p.Key).retain(), val: p.Value.retain()})
	}
	return Value{k: kObject, obj: o}
}
