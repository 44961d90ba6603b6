package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenReturnsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	want := []byte("hello, finalized image")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, closeFn, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()

	if string(data) != string(want) {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, closeFn, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()

	if len(data) != 0 {
		t.Errorf("got %d bytes, want 0", len(data))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
