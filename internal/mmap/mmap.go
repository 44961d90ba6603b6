// Package mmap gives buffer.OpenFile and buffer.OpenShared the option of
// backing a finalized image (such as one written by codec.FinalizeToFile)
// with a memory-mapped file instead of a heap []byte, so a buffer.Value's
// zero-copy promise can originate from disk, not just from an in-memory
// slice already held by the caller. A platform-specific openFile is split
// across unix/windows/fallback build tags behind one signature.
package mmap

// Open maps the file at path read-only and returns its contents along
// with a function that unmaps it. Callers must not use the returned
// bytes after calling close, and must not call close more than once.
func Open(path string) (data []byte, closeFn func() error, err error) {
	return openFile(path)
}
