// Package buffer implements the read-only, zero-copy representation of a
// structured value over a packed byte image. A Value
// is a thin view over a byte slice; no field access allocates except
// where an accessor's return type itself requires a copy (none do here —
// even Strv returns a zero-copy string view, the counterpart of heap's
// dynamic string layout).
//
// Values never mutate their backing bytes. The only way to get a buffer
// Value is to decode one, either standalone (Decode) or as a child
// reached by indexing into an array or object (Get, At, a Cursor).
package buffer
