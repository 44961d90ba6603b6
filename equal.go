package svalue

import "github.com/colinmarc/svalue/internal/kind"

// Equal performs a structural comparison suited to round-trip testing:
// object field order is irrelevant, array element order is significant,
// and numbers compare by value across the integer/decimal split
// (1 == 1.0).
func Equal(a, b Value) bool {
	ak, bk := a.Kind(), b.Kind()
	if ak.IsNumeric() && bk.IsNumeric() {
		an, _ := a.Numeric()
		bn, _ := b.Numeric()
		return an == bn
	}
	if ak != bk {
		return false
	}
	switch ak {
	case kind.Null:
		return true
	case kind.Boolean:
		av, _ := a.Bool()
		bv, _ := b.Bool()
		return av == bv
	case kind.String:
		av, _ := a.Strv()
		bv, _ := b.Strv()
		return av == bv
	case kind.Array:
		return equalArrays(a, b)
	case kind.Object:
		return equalObjects(a, b)
	default:
		return false
	}
}

func equalArrays(a, b Value) bool {
	an, _ := a.Size()
	bn, _ := b.Size()
	if an != bn {
		return false
	}
	for i := 0; i < an; i++ {
		ae, err := a.At(i)
		if err != nil {
			return false
		}
		be, err := b.At(i)
		if err != nil {
			return false
		}
		if !Equal(ae, be) {
			return false
		}
	}
	return true
}

func equalObjects(a, b Value) bool {
	an, _ := a.Size()
	bn, _ := b.Size()
	if an != bn {
		return false
	}
	keys, vals, err := objectEntries(a)
	if err != nil {
		return false
	}
	for i, k := range keys {
		if !b.HasKey(k) {
			return false
		}
		bv, err := b.Get(k)
		if err != nil {
			return false
		}
		if !Equal(vals[i], bv) {
			return false
		}
	}
	return true
}

// objectEntries returns v's object fields without forcing a heap lift
// when v is already buffer-backed.
func objectEntries(v Value) ([]string, []Value, error) {
	if v.isBuf {
		n, err := v.b.Size()
		if err != nil {
			return nil, nil, err
		}
		keys := make([]string, n)
		vals := make([]Value, n)
		for i := 0; i < n; i++ {
			k, val, err := v.b.KeyAt(i)
			if err != nil {
				return nil, nil, err
			}
			keys[i] = k
			vals[i] = Value{b: val, isBuf: true}
		}
		return keys, vals, nil
	}
	fields, err := v.h.Fields()
	if err != nil {
		return nil, nil, err
	}
	keys := make([]string, len(fields))
	vals := make([]Value, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
		vals[i] = Value{h: f.Value}
	}
	return keys, vals, nil
}
