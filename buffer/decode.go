package buffer

import (
	"github.com/colinmarc/svalue/internal/buf"
	"github.com/colinmarc/svalue/internal/kind"
	"github.com/colinmarc/svalue/internal/wire"
)

// tagAt reads the leading tag byte of data, failing if data is empty or
// the byte is not a recognized tag.
func tagAt(data []byte) (wire.Tag, error) {
	if len(data) < wire.TagSize {
		return 0, malformedf("decode", "buffer too short for a tag byte")
	}
	t := wire.Tag(data[0])
	if !t.Valid() {
		return 0, malformedf("decode", "unrecognized tag byte %#x", data[0])
	}
	return t, nil
}

// kindOf maps a wire tag to its logical kind.
func kindOf(t wire.Tag) kind.Kind {
	switch t {
	case wire.TagNull:
		return kind.Null
	case wire.TagBoolean:
		return kind.Boolean
	case wire.TagInteger:
		return kind.Integer
	case wire.TagDecimal:
		return kind.Decimal
	case wire.TagSmallString, wire.TagString, wire.TagBigString:
		return kind.String
	case wire.TagArray:
		return kind.Array
	case wire.TagObject:
		return kind.Object
	default:
		return kind.Null
	}
}

// sizeOf computes the total byte length of the value beginning at
// data[0], without recursing into array/object children: aggregates
// carry their own total size in the header.
func sizeOf(data []byte) (int, error) {
	t, err := tagAt(data)
	if err != nil {
		return 0, err
	}
	switch t {
	case wire.TagNull:
		return wire.TagSize, nil
	case wire.TagBoolean:
		n := wire.TagSize + wire.BooleanPayloadSize
		if !buf.Has(data, 0, n) {
			return 0, malformedf("decode", "truncated boolean")
		}
		return n, nil
	case wire.TagInteger:
		n := wire.TagSize + wire.IntegerPayloadSize
		if !buf.Has(data, 0, n) {
			return 0, malformedf("decode", "truncated integer")
		}
		return n, nil
	case wire.TagDecimal:
		n := wire.TagSize + wire.DecimalPayloadSize
		if !buf.Has(data, 0, n) {
			return 0, malformedf("decode", "truncated decimal")
		}
		return n, nil
	case wire.TagSmallString, wire.TagString, wire.TagBigString:
		return stringSize(data, t)
	case wire.TagArray, wire.TagObject:
		return aggregateSize(data)
	default:
		return 0, malformedf("decode", "unrecognized tag byte %#x", data[0])
	}
}

// stringSize returns the total size of a (small|big)? string value at
// data[0], whose tag has already been confirmed to be t.
func stringSize(data []byte, t wire.Tag) (int, error) {
	var lenFieldSize int
	switch t {
	case wire.TagSmallString:
		lenFieldSize = wire.SmallStringLenSize
	case wire.TagString:
		lenFieldSize = wire.StringLenSize
	case wire.TagBigString:
		lenFieldSize = wire.BigStringLenSize
	}
	lenFieldOff := wire.TagSize
	if !buf.Has(data, lenFieldOff, lenFieldSize) {
		return 0, malformedf("decode", "truncated string length field")
	}
	strLen := int(buf.UintLE(data[lenFieldOff:], lenFieldSize))
	total := wire.TagSize + lenFieldSize + strLen
	if !buf.Has(data, 0, total) {
		return 0, malformedf("decode", "truncated string payload (need %d bytes)", total)
	}
	return total, nil
}

// aggregateSize returns the total size of an array or object value from
// its header's explicit total-size field, the layout shared by both
// kinds (wire.ArrayHeaderSize == wire.ObjectHeaderSize).
func aggregateSize(data []byte) (int, error) {
	if !buf.Has(data, 0, wire.ArrayHeaderSize) {
		return 0, malformedf("decode", "truncated aggregate header")
	}
	total := int(buf.U32LE(data[wire.TagSize:]))
	if total < wire.ArrayHeaderSize {
		return 0, malformedf("decode", "aggregate total size %d is smaller than its header", total)
	}
	if !buf.Has(data, 0, total) {
		return 0, malformedf("decode", "aggregate total size %d exceeds available bytes", total)
	}
	return total, nil
}

// aggregateHeader decodes the count and offset-table width shared by
// arrays and objects, plus the byte offset where the offset table starts.
func aggregateHeader(data []byte) (count int, offsetWidth int, tableStart int, err error) {
	if !buf.Has(data, 0, wire.ArrayHeaderSize) {
		return 0, 0, 0, malformedf("decode", "truncated aggregate header")
	}
	count = int(buf.U32LE(data[wire.TagSize+wire.AggregateTotalSizeSize:]))
	offsetWidth = int(data[wire.TagSize+wire.AggregateTotalSizeSize+wire.AggregateCountSize])
	if offsetWidth != 1 && offsetWidth != 2 && offsetWidth != 4 {
		return 0, 0, 0, malformedf("decode", "unrecognized offset-table width %d", offsetWidth)
	}
	tableStart = wire.ArrayHeaderSize
	tableEnd, ok := buf.AddOverflowSafe(tableStart, count*offsetWidth)
	if !ok || !buf.Has(data, tableStart, count*offsetWidth) {
		return 0, 0, 0, malformedf("decode", "truncated offset table (%d entries)", count)
	}
	_ = tableEnd
	return count, offsetWidth, tableStart, nil
}

// elementOffset reads the i-th offset-table entry, an offset relative to
// the start of data (the aggregate's own tag byte).
func elementOffset(data []byte, tableStart, offsetWidth, i int) (int, error) {
	off := tableStart + i*offsetWidth
	if !buf.Has(data, off, offsetWidth) {
		return 0, malformedf("decode", "offset table entry %d out of bounds", i)
	}
	return int(buf.UintLE(data[off:], offsetWidth)), nil
}
