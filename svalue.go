// Package svalue is the top-level entry point for this module: a
// dual-representation structured-value library with a mutable heap tree
// and an immutable, zero-copy wire buffer, unified by a single dispatch
// Value type. Most programs only need this package; the
// heap, buffer, codec, and convert packages underneath are usable
// directly for code that only ever needs one side of the split.
package svalue

import (
	"github.com/colinmarc/svalue/buffer"
	"github.com/colinmarc/svalue/codec"
	"github.com/colinmarc/svalue/convert"
	"github.com/colinmarc/svalue/heap"
	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/kind"
)

// Kind is the logical type of a Value, independent of which
// representation backs it.
type Kind = kind.Kind

const (
	KindNull    = kind.Null
	KindBoolean = kind.Boolean
	KindInteger = kind.Integer
	KindDecimal = kind.Decimal
	KindString  = kind.String
	KindArray   = kind.Array
	KindObject  = kind.Object
)

// Value dispatches every operation to whichever representation backs it:
// a mutable heap.Value, or a read-only buffer.Value decoded from a
// finalized image. Exactly one of the two is set; the zero Value is a
// null heap value, matching heap.Value's own zero-value contract.
type Value struct {
	h     heap.Value
	b     buffer.Value
	isBuf bool
}

// FromHeap wraps a heap.Value as a top-level Value.
func FromHeap(v heap.Value) Value { return Value{h: v} }

// FromBuffer wraps a buffer.Value as a top-level Value.
func FromBuffer(v buffer.Value) Value { return Value{b: v, isBuf: true} }

// Null returns a null Value.
func Null() Value { return Value{h: heap.Null()} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{h: heap.Bool(b)} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{h: heap.Int(i)} }

// Float returns a decimal Value.
func Float(f float64) Value { return Value{h: heap.Float(f)} }

// Str returns a string Value.
func Str(s string) Value { return Value{h: heap.Str(s)} }

// NewArray returns an array Value holding the given elements.
func NewArray(vals ...Value) Value {
	hvals := make([]heap.Value, len(vals))
	for i, v := range vals {
		hvals[i] = v.asHeap()
	}
	return Value{h: heap.NewArray(hvals...)}
}

// Pair is one key/value argument to NewObject.
type Pair struct {
	Key   string
	Value Value
}

// NewObject returns an object Value built from pairs, in order.
func NewObject(pairs ...Pair) Value {
	hpairs := make([]heap.Pair, len(pairs))
	for i, p := range pairs {
		hpairs[i] = heap.Pair{Key: p.Key, Value: p.Value.asHeap()}
	}
	return Value{h: heap.NewObjectFrom(hpairs...)}
}

// IsBuffer reports whether v is backed by a read-only buffer view rather
// than a mutable heap tree.
func (v Value) IsBuffer() bool { return v.isBuf }

// asHeap returns v's heap.Value form, returning a lifted copy for a
// buffer-backed Value and leaving v itself unchanged (ensureHeap is the
// in-place variant). Used internally wherever an operation is heap-only:
// the wire form is read-only, so mutation has no buffer counterpart.
func (v Value) asHeap() heap.Value {
	if !v.isBuf {
		return v.h
	}
	lifted, err := codec.Lift(v.b)
	if err != nil {
		return heap.Null()
	}
	return lifted
}

func (v Value) Kind() Kind {
	if v.isBuf {
		return v.b.Kind()
	}
	return v.h.Kind()
}

func (v Value) IsNull() bool    { return v.Kind() == kind.Null }
func (v Value) IsBoolean() bool { return v.Kind() == kind.Boolean }
func (v Value) IsInteger() bool { return v.Kind() == kind.Integer }
func (v Value) IsDecimal() bool { return v.Kind() == kind.Decimal }
func (v Value) IsString() bool  { return v.Kind() == kind.String }
func (v Value) IsArray() bool   { return v.Kind() == kind.Array }
func (v Value) IsObject() bool  { return v.Kind() == kind.Object }

func (v Value) IsNumeric() bool   { return v.Kind().IsNumeric() }
func (v Value) IsPrimitive() bool { return v.Kind().IsPrimitive() }
func (v Value) IsAggregate() bool { return v.Kind().IsAggregate() }

func (v Value) Bool() (bool, error) {
	if v.isBuf {
		return v.b.Bool()
	}
	return v.h.Bool()
}

func (v Value) BoolOr(def bool) bool {
	if v.isBuf {
		return v.b.BoolOr(def)
	}
	return v.h.BoolOr(def)
}

func (v Value) Int() (int64, error) {
	if v.isBuf {
		return v.b.Int()
	}
	return v.h.Int()
}

func (v Value) IntOr(def int64) int64 {
	if v.isBuf {
		return v.b.IntOr(def)
	}
	return v.h.IntOr(def)
}

func (v Value) Decimal() (float64, error) {
	if v.isBuf {
		return v.b.Decimal()
	}
	return v.h.Decimal()
}

func (v Value) DecimalOr(def float64) float64 {
	if v.isBuf {
		return v.b.DecimalOr(def)
	}
	return v.h.DecimalOr(def)
}

func (v Value) Numeric() (float64, error) {
	if v.isBuf {
		return v.b.Numeric()
	}
	return v.h.Numeric()
}

func (v Value) NumericOr(def float64) float64 {
	if v.isBuf {
		return v.b.NumericOr(def)
	}
	return v.h.NumericOr(def)
}

func (v Value) Strv() (string, error) {
	if v.isBuf {
		return v.b.Strv()
	}
	return v.h.Strv()
}

func (v Value) StrvOr(def string) string {
	if v.isBuf {
		return v.b.StrvOr(def)
	}
	return v.h.StrvOr(def)
}

func (v Value) Size() (int, error) {
	if v.isBuf {
		return v.b.Size()
	}
	return v.h.Size()
}

func (v Value) Truthy() bool {
	if v.isBuf {
		return v.b.Truthy()
	}
	return v.h.Truthy()
}

// Get looks up key (a string for objects, an int for arrays), returning
// null for a missing key or out-of-range index.
func (v Value) Get(key any) (Value, error) {
	if v.isBuf {
		switch k := key.(type) {
		case string:
			bv, err := v.b.GetKey(k)
			return Value{b: bv, isBuf: true}, err
		case int:
			bv, err := v.b.Get(k)
			return Value{b: bv, isBuf: true}, err
		default:
			return Value{}, errs.Typef("Get", "unsupported key type %T", key)
		}
	}
	hv, err := v.h.Get(key)
	return Value{h: hv}, err
}

// At is Get's strict counterpart: a missing key or out-of-range index is
// an out-of-range error.
func (v Value) At(key any) (Value, error) {
	if v.isBuf {
		switch k := key.(type) {
		case string:
			bv, err := v.b.AtKey(k)
			return Value{b: bv, isBuf: true}, err
		case int:
			bv, err := v.b.At(k)
			return Value{b: bv, isBuf: true}, err
		default:
			return Value{}, errs.Typef("At", "unsupported key type %T", key)
		}
	}
	hv, err := v.h.At(key)
	return Value{h: hv}, err
}

// GetView is Get's heterogeneous-lookup counterpart for objects.
func (v Value) GetView(key []byte) (Value, error) {
	if v.isBuf {
		bv, err := v.b.GetView(key)
		return Value{b: bv, isBuf: true}, err
	}
	hv, err := v.h.GetView(key)
	return Value{h: hv}, err
}

func (v Value) HasKey(key string) bool {
	if v.isBuf {
		return v.b.HasKey(key)
	}
	return v.h.HasKey(key)
}

func (v Value) HasKeyView(key []byte) bool {
	if v.isBuf {
		return v.b.HasKeyView(key)
	}
	return v.h.HasKeyView(key)
}

// GetNested walks a sep-separated path through nested objects, yielding
// null at the first missing segment. Buffer-backed values are lifted
// first since the mutation/walk helpers are heap operations.
func (v Value) GetNested(path string, sep byte) Value {
	return Value{h: v.asHeap().GetNested(path, sep)}
}

// Walk is GetNested's variadic sibling, avoiding separator-in-key
// ambiguity by taking each path segment as its own argument.
func (v Value) Walk(path ...string) Value {
	cur := v
	for _, seg := range path {
		next, err := cur.Get(seg)
		if err != nil || next.IsNull() {
			return Null()
		}
		cur = next
	}
	return cur
}

// The mutation surface (Insert, Set, Erase, PushFront/PushBack,
// PopFront/PopBack, Clear, AddField/RemoveField, Inject, Project) is
// heap-only, since the non-goals exclude mutating the wire form. A
// buffer-backed Value is lifted to heap on first mutation — callers who
// need to avoid that conversion should call codec.Lift explicitly ahead
// of time and keep working with a heap.Value directly.

func (v *Value) ensureHeap() {
	if v.isBuf {
		v.h = v.asHeap()
		v.b = buffer.Value{}
		v.isBuf = false
	}
}

func (v *Value) Insert(key any, val Value) (int, error) {
	v.ensureHeap()
	return v.h.Insert(key, val.asHeap())
}

func (v *Value) Set(key any, val Value) (int, error) {
	v.ensureHeap()
	return v.h.Set(key, val.asHeap())
}

func (v *Value) Erase(key any) (int, error) {
	v.ensureHeap()
	return v.h.Erase(key)
}

func (v *Value) PushFront(val Value) (int, error) {
	v.ensureHeap()
	return v.h.PushFront(val.asHeap())
}

func (v *Value) PushBack(val Value) (int, error) {
	v.ensureHeap()
	return v.h.PushBack(val.asHeap())
}

func (v *Value) PopFront() (Value, error) {
	v.ensureHeap()
	hv, err := v.h.PopFront()
	return Value{h: hv}, err
}

func (v *Value) PopBack() (Value, error) {
	v.ensureHeap()
	hv, err := v.h.PopBack()
	return Value{h: hv}, err
}

func (v *Value) Clear() error {
	v.ensureHeap()
	return v.h.Clear()
}

func (v *Value) AddField(name string, val Value) (int, error) {
	v.ensureHeap()
	return v.h.AddField(name, val.asHeap())
}

func (v *Value) RemoveField(name string) (int, error) {
	v.ensureHeap()
	return v.h.RemoveField(name)
}

// Fields returns v's object fields in storage order, without forcing a
// heap lift when v is already buffer-backed.
func (v Value) Fields() ([]Pair, error) {
	keys, vals, err := objectEntries(v)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: k, Value: vals[i]}
	}
	return pairs, nil
}

func (v Value) Inject(pairs ...Pair) (Value, error) {
	hpairs := make([]heap.Pair, len(pairs))
	for i, p := range pairs {
		hpairs[i] = heap.Pair{Key: p.Key, Value: p.Value.asHeap()}
	}
	hv, err := v.asHeap().Inject(hpairs...)
	return Value{h: hv}, err
}

func (v Value) Project(keys ...string) (Value, error) {
	hv, err := v.asHeap().Project(keys...)
	return Value{h: hv}, err
}

// Alias returns a second logical owner of v's container, for heap-backed
// values. A buffer-backed value has no
// refcounted container to alias and is returned unchanged.
func (v Value) Alias() Value {
	if v.isBuf {
		return v
	}
	return Value{h: v.h.Alias()}
}

// Finalize transcodes v into a packed, self-describing byte image
//.
func Finalize(v Value) ([]byte, error) {
	return codec.Finalize(v.asHeap())
}

// Lift decodes a finalized image into a top-level Value backed by a
// read-only buffer view.
func Lift(data []byte) (Value, error) {
	bv, err := buffer.Decode(data)
	if err != nil {
		return Value{}, err
	}
	return Value{b: bv, isBuf: true}, nil
}

// Convert brings a foreign Go value into the value model using the
// package-level convert.Registry (see the convert package for
// registering custom converters).
func Convert(v any) (Value, error) {
	hv, err := convert.Convert(v)
	if err != nil {
		return Value{}, err
	}
	return Value{h: hv}, nil
}
