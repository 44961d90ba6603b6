// Package strview provides zero-copy string/[]byte conversion and
// byte-lexicographic comparison, so that heterogeneous object lookup
// (querying a container keyed by owned strings with a borrowed []byte)
// never allocates a temporary owned string on the hot path.
package strview

import "unsafe"

// Bytes reinterprets s as a []byte without copying. The returned slice must
// not be mutated or retained past the lifetime of s; Go strings are
// immutable, and callers that write through this slice invoke undefined
// behavior.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String reinterprets b as a string without copying. The returned string
// aliases b; callers must not mutate b afterwards.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// EqualBytes reports whether s and b hold the same bytes, without
// allocating a temporary string or []byte for either side.
func EqualBytes(s string, b []byte) bool {
	if len(s) != len(b) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or 1 comparing a and b byte-lexicographically,
// the ordering the wire format's object key tables are sorted by.
func Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
