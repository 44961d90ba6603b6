package heap

import (
	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/kind"
)

// Kind aliases are local shorthands for the shared kind.Kind constants,
// used throughout this package's switch statements.
const (
	kNull    = kind.Null
	kBool    = kind.Boolean
	kInt     = kind.Integer
	kDecimal = kind.Decimal
	kString  = kind.String
	kArray   = kind.Array
	kObject  = kind.Object
)

// Value is the mutable, in-memory representation of a structured value.
// The zero Value is a valid null, matching kind.Null's zero value.
type Value struct {
	k     kind.Kind
	b     bool
	i     int64
	f     float64
	small sstr
	dyn   *dynstr
	arr   *array
	obj   *object
}

// Null returns a null Value. Equivalent to the zero Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{k: kBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{k: kInt, i: i} }

// Float returns a decimal Value.
func Float(f float64) Value { return Value{k: kDecimal, f: f} }

// Str returns a string Value, selecting the small or dynamic layout by
// length.
func Str(s string) Value { return newString(s) }

// Kind returns the value's logical type.
func (v Value) Kind() kind.Kind { return v.k }

func (v Value) IsNull() bool    { return v.k == kNull }
func (v Value) IsBoolean() bool { return v.k == kBool }
func (v Value) IsInteger() bool { return v.k == kInt }
func (v Value) IsDecimal() bool { return v.k == kDecimal }
func (v Value) IsString() bool  { return v.k == kString }
func (v Value) IsArray() bool   { return v.k == kArray }
func (v Value) IsObject() bool  { return v.k == kObject }

func (v Value) IsNumeric() bool   { return v.k.IsNumeric() }
func (v Value) IsPrimitive() bool { return v.k.IsPrimitive() }
func (v Value) IsAggregate() bool { return v.k.IsAggregate() }

// Bool returns the boolean payload, or a type error if v is not boolean.
func (v Value) Bool() (bool, error) {
	if v.k != kBool {
		return false, errs.Typef("Bool", "value is %s, not boolean", v.k)
	}
	return v.b, nil
}

// BoolOr returns the boolean payload, or def if v is not boolean.
func (v Value) BoolOr(def bool) bool {
	if v.k != kBool {
		return def
	}
	return v.b
}

// Int returns the integer payload, or a type error if v is not an integer.
func (v Value) Int() (int64, error) {
	if v.k != kInt {
		return 0, errs.Typef("Int", "value is %s, not integer", v.k)
	}
	return v.i, nil
}

// IntOr returns the integer payload, or def if v is not an integer.
func (v Value) IntOr(def int64) int64 {
	if v.k != kInt {
		return def
	}
	return v.i
}

// Decimal returns the float64 payload, or a type error if v is not a
// decimal.
func (v Value) Decimal() (float64, error) {
	if v.k != kDecimal {
		return 0, errs.Typef("Decimal", "value is %s, not decimal", v.k)
	}
	return v.f, nil
}

// DecimalOr returns the float64 payload, or def if v is not a decimal.
func (v Value) DecimalOr(def float64) float64 {
	if v.k != kDecimal {
		return def
	}
	return v.f
}

// Numeric returns v's numeric payload widened to float64, accepting
// either integer or decimal.
func (v Value) Numeric() (float64, error) {
	switch v.k {
	case kInt:
		return float64(v.i), nil
	case kDecimal:
		return v.f, nil
	default:
		return 0, errs.Typef("Numeric", "value is %s, not numeric", v.k)
	}
}

// NumericOr returns v's numeric payload widened to float64, or def if v
// is neither integer nor decimal.
func (v Value) NumericOr(def float64) float64 {
	n, err := v.Numeric()
	if err != nil {
		return def
	}
	return n
}

// Strv returns the string payload, or a type error if v is not a string.
func (v Value) Strv() (string, error) {
	if v.k != kString {
		return "", errs.Typef("Strv", "value is %s, not string", v.k)
	}
	return v.stringView(), nil
}

// StrvOr returns the string payload, or def if v is not a string.
func (v Value) StrvOr(def string) string {
	if v.k != kString {
		return def
	}
	return v.stringView()
}

// Size returns the byte length for a string, the element count for an
// array, or the field count for an object. It fails with a type error for
// any other kind.
func (v Value) Size() (int, error) {
	switch v.k {
	case kString:
		return v.stringLen(), nil
	case kArray:
		return v.arr.len(), nil
	case kObject:
		return v.obj.len(), nil
	default:
		return 0, errs.Typef("Size", "value is %s, which has no size", v.k)
	}
}

// Truthy coerces v to a bool: a boolean's own value, else the negation
// of is_null.
func (v Value) Truthy() bool {
	if v.k == kBool {
		return v.b
	}
	return v.k != kNull
}

// Alias returns a second logical owner of v, registering it with any
// shared array/object container's refcount so that the next mutation on
// either copy copies-on-write instead of mutating in place. Use this
// wherever another owner of v is retained; a bare Go assignment does not
// call Alias automatically (see package doc).
func (v Value) Alias() Value {
	return v.retain()
}

// retain registers a new logical owner of v's container, if any, and
// returns v unchanged (the pointer fields are identical; only the
// refcount moved).
func (v Value) retain() Value {
	if v.arr != nil {
		v.arr.rc.Retain()
	}
	if v.obj != nil {
		v.obj.rc.Retain()
	}
	return v
}

// release records that a copy of v is no longer held by its previous
// owner (a container slot being overwritten or removed). It does not free
// anything directly — Go's garbage collector reclaims the backing storage
// once the last Go-level reference is gone — it exists purely to keep
// refcounts accurate for future copy-on-write decisions.
func (v Value) release() {
	if v.arr != nil {
		v.arr.rc.Release()
	}
	if v.obj != nil {
		v.obj.rc.Release()
	}
}
