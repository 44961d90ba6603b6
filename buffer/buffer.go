package buffer

import (
	"github.com/colinmarc/svalue/internal/buf"
	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/kind"
	"github.com/colinmarc/svalue/internal/strview"
	"github.com/colinmarc/svalue/internal/wire"
)

// nullImage is a standalone one-byte null value, returned by Get when a
// key or index is absent so Get never needs a caller-supplied backing
// image to produce its null sentinel.
var nullImage = []byte{byte(wire.TagNull)}

// Null returns the null Value, backed by a shared static image.
func Null() Value { return Value{data: nullImage} }

// Value is a read-only view over a single finalized value's bytes,
// beginning at its tag byte and trimmed to its own exact length — a
// sibling or parent's trailing bytes are never reachable through it.
type Value struct {
	data []byte
}

// Decode reads one value beginning at data[0], trimming the returned
// Value to exactly the bytes that value occupies (the caller's slice may
// be longer, e.g. the whole finalized image).
func Decode(data []byte) (Value, error) {
	n, err := sizeOf(data)
	if err != nil {
		return Value{}, err
	}
	return Value{data: data[:n]}, nil
}

// ByteSize returns the finalized byte length of v, already known from
// decoding — callers never need to walk v to answer "how big is this".
func (v Value) ByteSize() int { return len(v.data) }

// Kind returns v's logical type. Decode having already validated the tag
// byte, this never returns an error.
func (v Value) Kind() kind.Kind {
	t := wire.Tag(v.data[0])
	return kindOf(t)
}

func (v Value) tag() wire.Tag { return wire.Tag(v.data[0]) }

func (v Value) IsNull() bool    { return v.tag() == wire.TagNull }
func (v Value) IsBoolean() bool { return v.tag() == wire.TagBoolean }
func (v Value) IsInteger() bool { return v.tag() == wire.TagInteger }
func (v Value) IsDecimal() bool { return v.tag() == wire.TagDecimal }
func (v Value) IsString() bool  { return v.Kind() == kind.String }
func (v Value) IsArray() bool   { return v.tag() == wire.TagArray }
func (v Value) IsObject() bool  { return v.tag() == wire.TagObject }

func (v Value) IsNumeric() bool   { return v.Kind().IsNumeric() }
func (v Value) IsPrimitive() bool { return v.Kind().IsPrimitive() }
func (v Value) IsAggregate() bool { return v.Kind().IsAggregate() }

// Bool returns the boolean payload, or a type error if v is not boolean.
func (v Value) Bool() (bool, error) {
	if !v.IsBoolean() {
		return false, errs.Typef("Bool", "value is %s, not boolean", v.Kind())
	}
	return v.data[wire.TagSize] != 0, nil
}

// BoolOr returns the boolean payload, or def if v is not boolean.
func (v Value) BoolOr(def bool) bool {
	b, err := v.Bool()
	if err != nil {
		return def
	}
	return b
}

// Int returns the integer payload, or a type error if v is not an integer.
func (v Value) Int() (int64, error) {
	if !v.IsInteger() {
		return 0, errs.Typef("Int", "value is %s, not integer", v.Kind())
	}
	return buf.I64LE(v.data[wire.TagSize:]), nil
}

// IntOr returns the integer payload, or def if v is not an integer.
func (v Value) IntOr(def int64) int64 {
	i, err := v.Int()
	if err != nil {
		return def
	}
	return i
}

// Decimal returns the float64 payload, or a type error if v is not a
// decimal.
func (v Value) Decimal() (float64, error) {
	if !v.IsDecimal() {
		return 0, errs.Typef("Decimal", "value is %s, not decimal", v.Kind())
	}
	return buf.F64LE(v.data[wire.TagSize:]), nil
}

// DecimalOr returns the float64 payload, or def if v is not a decimal.
func (v Value) DecimalOr(def float64) float64 {
	f, err := v.Decimal()
	if err != nil {
		return def
	}
	return f
}

// Numeric widens either an integer or decimal payload to float64.
func (v Value) Numeric() (float64, error) {
	switch v.tag() {
	case wire.TagInteger:
		i, _ := v.Int()
		return float64(i), nil
	case wire.TagDecimal:
		return v.Decimal()
	default:
		return 0, errs.Typef("Numeric", "value is %s, not numeric", v.Kind())
	}
}

// NumericOr returns v's numeric payload widened to float64, or def.
func (v Value) NumericOr(def float64) float64 {
	n, err := v.Numeric()
	if err != nil {
		return def
	}
	return n
}

// stringPayload returns the raw string bytes and the length-field width
// that preceded them, for a value already confirmed to be a string.
func (v Value) stringPayload() ([]byte, int) {
	var lenFieldSize int
	switch v.tag() {
	case wire.TagSmallString:
		lenFieldSize = wire.SmallStringLenSize
	case wire.TagString:
		lenFieldSize = wire.StringLenSize
	case wire.TagBigString:
		lenFieldSize = wire.BigStringLenSize
	}
	off := wire.TagSize
	strLen := int(buf.UintLE(v.data[off:], lenFieldSize))
	payloadStart := off + lenFieldSize
	return v.data[payloadStart : payloadStart+strLen], lenFieldSize
}

// Strv returns a zero-copy view of the string payload, valid for as long
// as the backing image is. Fails with a type error if v is not a string.
func (v Value) Strv() (string, error) {
	if !v.IsString() {
		return "", errs.Typef("Strv", "value is %s, not string", v.Kind())
	}
	payload, _ := v.stringPayload()
	return strview.String(payload), nil
}

// StrvOr returns the string payload, or def if v is not a string.
func (v Value) StrvOr(def string) string {
	s, err := v.Strv()
	if err != nil {
		return def
	}
	return s
}

// Size returns the byte length for a string, the element count for an
// array, or the field count for an object.
func (v Value) Size() (int, error) {
	switch v.Kind() {
	case kind.String:
		payload, _ := v.stringPayload()
		return len(payload), nil
	case kind.Array, kind.Object:
		count, _, _, err := aggregateHeader(v.data)
		if err != nil {
			return 0, err
		}
		return count, nil
	default:
		return 0, errs.Typef("Size", "value is %s, which has no size", v.Kind())
	}
}

// Truthy mirrors heap.Value.Truthy: a boolean's own value, else the
// negation of is_null.
func (v Value) Truthy() bool {
	if v.IsBoolean() {
		b, _ := v.Bool()
		return b
	}
	return !v.IsNull()
}
