// Package buf contains endian-safe decoding/encoding routines and bounds
// helpers used by the wire codec. Every multi-byte field in a finalized
// buffer image is little-endian regardless of host byte order, so all
// reads and writes go through here rather than aliasing raw pointers.
package buf

import (
	"encoding/binary"
	"math"
)

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// I64LE reads a little-endian int64 from b. Returns 0 when b is too short.
func I64LE(b []byte) int64 {
	return int64(U64LE(b))
}

// F64LE reads a little-endian IEEE-754 binary64 from b. Returns 0 when b
// is too short.
func F64LE(b []byte) float64 {
	return math.Float64frombits(U64LE(b))
}

// PutU16LE writes v into b[0:2] as little-endian.
func PutU16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// PutU32LE writes v into b[0:4] as little-endian.
func PutU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// PutU64LE writes v into b[0:8] as little-endian.
func PutU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// PutI64LE writes v into b[0:8] as little-endian.
func PutI64LE(b []byte, v int64) { PutU64LE(b, uint64(v)) }

// PutF64LE writes v into b[0:8] as little-endian IEEE-754 binary64.
func PutF64LE(b []byte, v float64) { PutU64LE(b, math.Float64bits(v)) }

// UintLE reads a little-endian unsigned integer of the given width (1, 2,
// or 4 bytes) from b, widened to uint32. Used for the variable-width
// offset-table entries in the finalized array/object layout. Returns 0 for
// an unrecognized width or a short read.
func UintLE(b []byte, width int) uint32 {
	switch width {
	case 1:
		if len(b) < 1 {
			return 0
		}
		return uint32(b[0])
	case 2:
		return uint32(U16LE(b))
	case 4:
		return U32LE(b)
	default:
		return 0
	}
}

// PutUintLE writes v into b using the given width (1, 2, or 4 bytes),
// the inverse of UintLE.
func PutUintLE(b []byte, width int, v uint32) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		PutU16LE(b, uint16(v))
	case 4:
		PutU32LE(b, v)
	}
}
