// Package codec transcodes between the heap and buffer representations:
// Finalize walks a heap.Value post-order into a packed byte image, and
// Lift walks a buffer.Value into an equivalent heap.Value tree. The two
// functions play the same two-direction role a tree-to-bytes builder and
// a bytes-to-tree reader play for any serialized structured format.
package codec
