package buffer_test

import (
	"testing"

	"github.com/colinmarc/svalue/buffer"
	"github.com/colinmarc/svalue/heap"
)

func TestCursorForwardOverArray(t *testing.T) {
	v := encode(t, heap.NewArray(heap.Int(1), heap.Int(2), heap.Int(3)))
	c, err := buffer.NewCursor(v)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}

	var got []int64
	for {
		elem, err := c.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		i, _ := elem.Int()
		got = append(got, i)
		if !c.Next() {
			break
		}
	}
	want := []int64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCursorReverseOverArray(t *testing.T) {
	v := encode(t, heap.NewArray(heap.Int(1), heap.Int(2), heap.Int(3)))
	c, err := buffer.NewCursor(v)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}
	c.Reverse()

	elem, err := c.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if i, _ := elem.Int(); i != 3 {
		t.Errorf("first reverse element = %d, want 3", i)
	}
}

func TestCursorOverObjectYieldsSortedKeys(t *testing.T) {
	v := encode(t, heap.NewObjectFrom(
		heap.Pair{Key: "z", Value: heap.Int(1)},
		heap.Pair{Key: "a", Value: heap.Int(2)},
	))
	c, err := buffer.NewCursor(v)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}

	k, err := c.Key()
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if k != "a" {
		t.Errorf("first key = %q, want a", k)
	}
}

func TestCursorOnScalarIsTypeError(t *testing.T) {
	v := encode(t, heap.Int(1))
	if _, err := buffer.NewCursor(v); err == nil {
		t.Fatal("expected type error")
	}
}

func TestCursorKeyOnArrayIsTypeError(t *testing.T) {
	v := encode(t, heap.NewArray(heap.Int(1)))
	c, err := buffer.NewCursor(v)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}
	if _, err := c.Key(); err == nil {
		t.Fatal("expected type error for Key on an array cursor")
	}
}
