package heap

import "github.com/colinmarc/svalue/internal/strview"

// smallStringCap is S in the small-string layout: strings of this
// length or shorter are stored inline in the Value struct; longer strings
// fall back to the dynamic layout. The layout is chosen once, by length,
// at construction — there is no promotion.
const smallStringCap = 22

// sstr is a string stored inline. length is tracked directly rather than
// as a "bytes remaining" count; the trick of reusing the
// remaining-count byte as the string's NUL terminator when length == S is
// a C-interop concern with no equivalent need in Go (nothing here reads
// past Len() looking for a sentinel byte), so it is not reproduced bit for
// bit — length is simply capped at smallStringCap and read directly.
type sstr struct {
	data [smallStringCap]byte
	n    uint8
}

// dynstr is the dynamic-string layout: a heap-allocated byte slice shared
// by every Value that holds it. Dynamic strings are immutable once built
// (every mutating heap.Value operation replaces a string wholesale rather
// than editing bytes in place), so unlike array and object containers a
// dynstr needs no refcount of its own — ordinary Go garbage collection
// already does the right thing once every Value referencing it is gone,
// and no copy-on-write decision ever depends on how many Values alias it.
type dynstr struct {
	data []byte
}

// newString selects the small or dynamic layout by length and returns a
// string-kind Value. s is copied into inline storage for the small case
// and into a freshly allocated byte slice for the dynamic case, so the
// result never shares bytes with the caller.
func newString(s string) Value {
	if len(s) <= smallStringCap {
		var ss sstr
		copy(ss.data[:], s)
		ss.n = uint8(len(s))
		return Value{k: kString, small: ss}
	}
	return Value{k: kString, dyn: &dynstr{data: []byte(s)}}
}

// stringBytes returns the raw bytes of a string-kind Value without
// allocating for the dynamic case; the small case still allocates nothing
// beyond the inline array already embedded in v.
func (v Value) stringBytes() []byte {
	if v.dyn != nil {
		return v.dyn.data
	}
	return v.small.data[:v.small.n]
}

// stringLen returns the byte length of a string-kind Value.
func (v Value) stringLen() int {
	if v.dyn != nil {
		return len(v.dyn.data)
	}
	return int(v.small.n)
}

// stringView returns a zero-copy string view for the dynamic layout and a
// small allocation for the inline layout (at most smallStringCap bytes,
// cheaper than chasing a pointer for a view that size).
func (v Value) stringView() string {
	if v.dyn != nil {
		return strview.String(v.dyn.data)
	}
	return string(v.small.data[:v.small.n])
}
