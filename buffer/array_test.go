package buffer_test

import (
	"testing"

	"github.com/colinmarc/svalue/heap"
)

func TestArrayAtAndGet(t *testing.T) {
	v := encode(t, heap.NewArray(heap.Int(1), heap.Int(2), heap.Int(3)))

	got, err := v.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if i, _ := got.Int(); i != 2 {
		t.Errorf("At(1) = %d, want 2", i)
	}

	if _, err := v.At(10); err == nil {
		t.Fatal("expected out-of-range error")
	}

	null, err := v.Get(10)
	if err != nil {
		t.Fatalf("Get(10): %v", err)
	}
	if !null.IsNull() {
		t.Error("Get(10) should be null for an out-of-range index")
	}
}

func TestArrayAtOnNonArrayIsTypeError(t *testing.T) {
	v := encode(t, heap.Int(1))
	if _, err := v.At(0); err == nil {
		t.Fatal("expected type error")
	}
}
