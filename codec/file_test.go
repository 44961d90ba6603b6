package codec

import (
	"path/filepath"
	"testing"

	"github.com/colinmarc/svalue/buffer"
	"github.com/colinmarc/svalue/heap"
)

func TestFinalizeToFileThenOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.svb")
	orig := heap.NewObjectFrom(
		heap.Pair{Key: "name", Value: heap.Str("hive")},
		heap.Pair{Key: "count", Value: heap.Int(7)},
	)

	if err := FinalizeToFile(orig, path); err != nil {
		t.Fatalf("FinalizeToFile: %v", err)
	}

	v, closeFn, err := buffer.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer closeFn()

	got, err := v.AtKey("name")
	if err != nil {
		t.Fatalf("AtKey(name): %v", err)
	}
	if s, _ := got.Strv(); s != "hive" {
		t.Errorf("name = %q, want hive", s)
	}
}
