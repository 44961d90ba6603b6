//go:build windows

package mmap

import "os"

// Windows memory-mapping needs CreateFileMapping/MapViewOfFile bookkeeping
// this package's single-function signature doesn't carry a handle for;
// a full read is the pragmatic equivalent until a caller needs true
// zero-copy on Windows specifically.
func openFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
