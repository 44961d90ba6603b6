package codec

import (
	"github.com/colinmarc/svalue/buffer"
	"github.com/colinmarc/svalue/heap"
	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/kind"
)

// Lift transcodes a buffer.Value into an independent, mutable heap.Value
// tree: the inverse of Finalize. Every string, array, and
// object is freshly allocated; the returned tree shares no storage with
// the buffer's backing image, so it is safe to mutate even after the
// image is discarded.
func Lift(v buffer.Value) (heap.Value, error) {
	switch v.Kind() {
	case kind.Null:
		return heap.Null(), nil
	case kind.Boolean:
		b, err := v.Bool()
		if err != nil {
			return heap.Null(), err
		}
		return heap.Bool(b), nil
	case kind.Integer:
		i, err := v.Int()
		if err != nil {
			return heap.Null(), err
		}
		return heap.Int(i), nil
	case kind.Decimal:
		f, err := v.Decimal()
		if err != nil {
			return heap.Null(), err
		}
		return heap.Float(f), nil
	case kind.String:
		s, err := v.Strv()
		if err != nil {
			return heap.Null(), err
		}
		return heap.Str(s), nil
	case kind.Array:
		return liftArray(v)
	case kind.Object:
		return liftObject(v)
	default:
		return heap.Null(), errs.Typef("Lift", "unrecognized kind %s", v.Kind())
	}
}

func liftArray(v buffer.Value) (heap.Value, error) {
	n, err := v.Size()
	if err != nil {
		return heap.Null(), err
	}
	vals := make([]heap.Value, n)
	for i := 0; i < n; i++ {
		elem, err := v.At(i)
		if err != nil {
			return heap.Null(), err
		}
		lv, err := Lift(elem)
		if err != nil {
			return heap.Null(), err
		}
		vals[i] = lv
	}
	return heap.NewArray(vals...), nil
}

func liftObject(v buffer.Value) (heap.Value, error) {
	n, err := v.Size()
	if err != nil {
		return heap.Null(), err
	}
	pairs := make([]heap.Pair, n)
	for i := 0; i < n; i++ {
		key, val, err := v.KeyAt(i)
		if err != nil {
			return heap.Null(), err
		}
		lv, err := Lift(val)
		if err != nil {
			return heap.Null(), err
		}
		pairs[i] = heap.Pair{Key: key, Value: lv}
	}
	return heap.NewObjectFrom(pairs...), nil
}
