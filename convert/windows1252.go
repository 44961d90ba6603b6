package convert

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/colinmarc/svalue/heap"
	"github.com/colinmarc/svalue/internal/errs"
)

// FromWindows1252 decodes data as legacy Windows-1252 bytes into a UTF-8
// heap string value, the shape of conversion a Convert caller needs when
// its source values arrive as raw bytes from a legacy byte-oriented
// store.
func FromWindows1252(data []byte) (heap.Value, error) {
	s, err := charmap.Windows1252.NewDecoder().String(string(data))
	if err != nil {
		return heap.Null(), errs.Invalidf("FromWindows1252", "invalid Windows-1252 bytes: %v", err)
	}
	return heap.Str(s), nil
}
