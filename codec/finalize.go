package codec

import (
	"sort"

	"github.com/colinmarc/svalue/heap"
	"github.com/colinmarc/svalue/internal/buf"
	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/kind"
	"github.com/colinmarc/svalue/internal/strview"
	"github.com/colinmarc/svalue/internal/wire"
)

// Finalize transcodes a heap.Value tree into a self-describing, packed
// byte image: a post-order traversal that encodes every
// child before its parent, so each aggregate's header can record the
// finished total size and offset table in one pass.
func Finalize(v heap.Value) ([]byte, error) {
	return finalizeValue(v)
}

func finalizeValue(v heap.Value) ([]byte, error) {
	switch v.Kind() {
	case kind.Null:
		return []byte{byte(wire.TagNull)}, nil
	case kind.Boolean:
		b, _ := v.Bool()
		payload := byte(0)
		if b {
			payload = 1
		}
		return []byte{byte(wire.TagBoolean), payload}, nil
	case kind.Integer:
		i, _ := v.Int()
		out := make([]byte, wire.TagSize+wire.IntegerPayloadSize)
		out[0] = byte(wire.TagInteger)
		buf.PutI64LE(out[wire.TagSize:], i)
		return out, nil
	case kind.Decimal:
		f, _ := v.Decimal()
		out := make([]byte, wire.TagSize+wire.DecimalPayloadSize)
		out[0] = byte(wire.TagDecimal)
		buf.PutF64LE(out[wire.TagSize:], f)
		return out, nil
	case kind.String:
		return finalizeString(v)
	case kind.Array:
		return finalizeArray(v)
	case kind.Object:
		return finalizeObject(v)
	default:
		return nil, errs.Typef("Finalize", "unrecognized kind %s", v.Kind())
	}
}

func finalizeString(v heap.Value) ([]byte, error) {
	s, err := v.Strv()
	if err != nil {
		return nil, err
	}
	if len(s) > wire.BigStringMaxLen {
		return nil, errs.Invalidf("Finalize", "string length %d exceeds maximum %d", len(s), wire.BigStringMaxLen)
	}
	tag, lenFieldSize := wire.StringTagFor(len(s))
	out := make([]byte, wire.TagSize+lenFieldSize+len(s))
	out[0] = byte(tag)
	buf.PutUintLE(out[wire.TagSize:], lenFieldSize, uint32(len(s)))
	copy(out[wire.TagSize+lenFieldSize:], s)
	return out, nil
}

func finalizeArray(v heap.Value) ([]byte, error) {
	elems, err := v.Elements()
	if err != nil {
		return nil, err
	}
	childBytes := make([][]byte, len(elems))
	for i, e := range elems {
		cb, err := finalizeValue(e)
		if err != nil {
			return nil, err
		}
		childBytes[i] = cb
	}
	return assembleAggregate(wire.TagArray, childBytes)
}

// finalizeObject sorts v's fields by key bytes and encodes each one as the
// key prefixed with its length, followed by the finalized value bytes;
// each field's offset-table entry points at the start of that encoding.
func finalizeObject(v heap.Value) ([]byte, error) {
	fields, err := v.Fields()
	if err != nil {
		return nil, err
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })

	childBytes := make([][]byte, len(fields))
	for i, f := range fields {
		if len(f.Key) > wire.ObjectKeyMaxLen {
			return nil, errs.Invalidf("Finalize", "key length %d exceeds maximum %d", len(f.Key), wire.ObjectKeyMaxLen)
		}
		valBytes, err := finalizeValue(f.Value)
		if err != nil {
			return nil, err
		}
		entry := make([]byte, wire.ObjectKeyLenSize+len(f.Key)+len(valBytes))
		buf.PutUintLE(entry, wire.ObjectKeyLenSize, uint32(len(f.Key)))
		n := copy(entry[wire.ObjectKeyLenSize:], strview.Bytes(f.Key))
		copy(entry[wire.ObjectKeyLenSize+n:], valBytes)
		childBytes[i] = entry
	}
	return assembleAggregate(wire.TagObject, childBytes)
}

// assembleAggregate writes the shared array/object header (tag, total
// size, count, offset-table width) followed by the offset table and the
// already-encoded child entries. The offset-table width depends on the
// total block size, which depends on the table's own width, so this
// converges in at most two passes: compute assuming the widest table,
// then narrow once the true total size is known.
func assembleAggregate(tag wire.Tag, childBytes [][]byte) ([]byte, error) {
	count := len(childBytes)
	childTotal := 0
	for _, cb := range childBytes {
		childTotal += len(cb)
	}

	width := 4
	for iter := 0; iter < 2; iter++ {
		total := wire.ArrayHeaderSize + count*width + childTotal
		narrower := wire.OffsetWidthFor(total)
		if narrower == width {
			break
		}
		width = narrower
	}
	total := wire.ArrayHeaderSize + count*width + childTotal

	out := make([]byte, total)
	out[0] = byte(tag)
	buf.PutU32LE(out[wire.TagSize:], uint32(total))
	buf.PutU32LE(out[wire.TagSize+wire.AggregateTotalSizeSize:], uint32(count))
	out[wire.TagSize+wire.AggregateTotalSizeSize+wire.AggregateCountSize] = byte(width)

	tableStart := wire.ArrayHeaderSize
	cursor := tableStart + count*width
	for i, cb := range childBytes {
		buf.PutUintLE(out[tableStart+i*width:], width, uint32(cursor))
		copy(out[cursor:], cb)
		cursor += len(cb)
	}
	return out, nil
}
