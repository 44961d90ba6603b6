package buffer

import (
	"github.com/colinmarc/svalue/internal/buf"
	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/strview"
	"github.com/colinmarc/svalue/internal/wire"
)

// field decodes the key bytes and value offset for the field entry that
// begins at off within v's data. The returned key is a view into v's own data, never copied.
func (v Value) field(off int) (key []byte, valueOff int, err error) {
	if !buf.Has(v.data, off, wire.ObjectKeyLenSize) {
		return nil, 0, malformedf("decode", "truncated field key length")
	}
	keyLen := int(buf.UintLE(v.data[off:], wire.ObjectKeyLenSize))
	keyStart := off + wire.ObjectKeyLenSize
	if !buf.Has(v.data, keyStart, keyLen) {
		return nil, 0, malformedf("decode", "truncated field key")
	}
	return v.data[keyStart : keyStart+keyLen], keyStart + keyLen, nil
}

// fieldAt resolves field index i (in sorted offset-table order) to its
// key bytes and value offset, given the already-decoded header.
func (v Value) fieldAt(i, offsetWidth, tableStart int) (key []byte, valueOff int, err error) {
	fieldOff, err := elementOffset(v.data, tableStart, offsetWidth, i)
	if err != nil {
		return nil, 0, err
	}
	return v.field(fieldOff)
}

// indexOfBytes binary-searches v's sorted offset table for key, returning
// its field index or -1. Object keys are stored byte-lexicographically
// sorted at finalize time, making this O(log n) without
// ever allocating a comparison string.
func (v Value) indexOfBytes(key []byte) (int, int, int, error) {
	count, offsetWidth, tableStart, err := aggregateHeader(v.data)
	if err != nil {
		return -1, offsetWidth, tableStart, err
	}
	lo, hi := 0, count
	for lo < hi {
		mid := (lo + hi) / 2
		midKey, _, err := v.fieldAt(mid, offsetWidth, tableStart)
		if err != nil {
			return -1, offsetWidth, tableStart, err
		}
		switch strview.Compare(strview.String(midKey), strview.String(key)) {
		case 0:
			return mid, offsetWidth, tableStart, nil
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1, offsetWidth, tableStart, nil
}

// AtKey returns the field named key, or an out-of-range error if absent.
// Fails with a type error if v is not an object.
func (v Value) AtKey(key string) (Value, error) {
	if !v.IsObject() {
		return Value{}, errs.Typef("At", "value is %s, not an object", v.Kind())
	}
	i, offsetWidth, tableStart, err := v.indexOfBytes(strview.Bytes(key))
	if err != nil {
		return Value{}, err
	}
	if i < 0 {
		return Value{}, errs.Rangef("At", "key %q not found", key)
	}
	_, valueOff, err := v.fieldAt(i, offsetWidth, tableStart)
	if err != nil {
		return Value{}, err
	}
	return Decode(v.data[valueOff:])
}

// GetKey is AtKey's "missing means null" counterpart, mirroring
// heap.Value.Get.
func (v Value) GetKey(key string) (Value, error) {
	if !v.IsObject() {
		return Value{}, errs.Typef("Get", "value is %s, not an object", v.Kind())
	}
	val, err := v.AtKey(key)
	if err != nil && errs.Range.Is(err) {
		return Null(), nil
	}
	return val, err
}

// GetView is GetKey's heterogeneous-lookup counterpart: it queries by a
// borrowed []byte without constructing a temporary owned string key.
func (v Value) GetView(key []byte) (Value, error) {
	if !v.IsObject() {
		return Value{}, errs.Typef("GetView", "value is %s, not an object", v.Kind())
	}
	i, offsetWidth, tableStart, err := v.indexOfBytes(key)
	if err != nil {
		return Value{}, err
	}
	if i < 0 {
		return Null(), nil
	}
	_, valueOff, err := v.fieldAt(i, offsetWidth, tableStart)
	if err != nil {
		return Value{}, err
	}
	return Decode(v.data[valueOff:])
}

// HasKey reports whether v is an object containing key.
func (v Value) HasKey(key string) bool {
	if !v.IsObject() {
		return false
	}
	i, _, _, err := v.indexOfBytes(strview.Bytes(key))
	return err == nil && i >= 0
}

// HasKeyView is HasKey's heterogeneous-lookup counterpart.
func (v Value) HasKeyView(key []byte) bool {
	if !v.IsObject() {
		return false
	}
	i, _, _, err := v.indexOfBytes(key)
	return err == nil && i >= 0
}

// KeyAt returns the key and value at field index i in sorted order, or an
// out-of-range error if i is outside [0, len).
func (v Value) KeyAt(i int) (string, Value, error) {
	if !v.IsObject() {
		return "", Value{}, errs.Typef("KeyAt", "value is %s, not an object", v.Kind())
	}
	count, offsetWidth, tableStart, err := aggregateHeader(v.data)
	if err != nil {
		return "", Value{}, err
	}
	if i < 0 || i >= count {
		return "", Value{}, errs.Rangef("KeyAt", "index %d out of range (length %d)", i, count)
	}
	key, valueOff, err := v.fieldAt(i, offsetWidth, tableStart)
	if err != nil {
		return "", Value{}, err
	}
	val, err := Decode(v.data[valueOff:])
	if err != nil {
		return "", Value{}, err
	}
	return strview.String(key), val, nil
}
