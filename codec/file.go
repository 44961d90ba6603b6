package codec

import (
	"os"

	"github.com/colinmarc/svalue/heap"
)

// FinalizeToFile finalizes v and writes the resulting image to path,
// giving callers a file that buffer.OpenFile can later memory-map rather
// than keeping the whole image resident as a heap []byte.
func FinalizeToFile(v heap.Value, path string) error {
	data, err := Finalize(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
