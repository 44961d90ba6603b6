package buffer

import (
	"bytes"

	"github.com/colinmarc/svalue/internal/kind"
)

// Validate performs a bytes-only structural sanity check over image: tag
// bytes are recognized, every declared length and offset stays in
// bounds, and object keys appear in sorted order. It does not allocate a
// heap.Value or otherwise lift the image.
func Validate(image []byte) error {
	v, err := Decode(image)
	if err != nil {
		return err
	}
	return validateValue(v)
}

func validateValue(v Value) error {
	switch v.Kind() {
	case kind.Array:
		return validateArray(v)
	case kind.Object:
		return validateObject(v)
	default:
		return nil
	}
}

func validateArray(v Value) error {
	count, offsetWidth, tableStart, err := aggregateHeader(v.data)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		off, err := elementOffset(v.data, tableStart, offsetWidth, i)
		if err != nil {
			return err
		}
		if off > len(v.data) {
			return malformedf("Validate", "element %d offset %d out of bounds", i, off)
		}
		elem, err := Decode(v.data[off:])
		if err != nil {
			return err
		}
		if err := validateValue(elem); err != nil {
			return err
		}
	}
	return nil
}

func validateObject(v Value) error {
	count, offsetWidth, tableStart, err := aggregateHeader(v.data)
	if err != nil {
		return err
	}
	var prevKey []byte
	for i := 0; i < count; i++ {
		key, valueOff, err := v.fieldAt(i, offsetWidth, tableStart)
		if err != nil {
			return err
		}
		if prevKey != nil && bytes.Compare(prevKey, key) >= 0 {
			return malformedf("Validate", "object keys out of order at field %d", i)
		}
		prevKey = key
		elem, err := Decode(v.data[valueOff:])
		if err != nil {
			return err
		}
		if err := validateValue(elem); err != nil {
			return err
		}
	}
	return nil
}
