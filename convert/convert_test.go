package convert

import (
	"reflect"
	"sync"
	"testing"

	"github.com/colinmarc/svalue/heap"
)

type customID int

func TestConvertBuiltinScalars(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		in   any
		want heap.Value
	}{
		{nil, heap.Null()},
		{true, heap.Bool(true)},
		{"hi", heap.Str("hi")},
		{42, heap.Int(42)},
		{uint32(7), heap.Int(7)},
		{3.5, heap.Float(3.5)},
	}
	for _, c := range cases {
		got, err := r.Convert(c.in)
		if err != nil {
			t.Fatalf("Convert(%v): %v", c.in, err)
		}
		if got.Kind() != c.want.Kind() {
			t.Errorf("Convert(%v) kind = %s, want %s", c.in, got.Kind(), c.want.Kind())
		}
	}
}

func TestConvertSliceAndMap(t *testing.T) {
	r := NewRegistry()
	got, err := r.Convert([]any{1, "a", true})
	if err != nil {
		t.Fatalf("Convert slice: %v", err)
	}
	if n, _ := got.Size(); n != 3 {
		t.Fatalf("Size() = %d, want 3", n)
	}

	gotObj, err := r.Convert(map[string]any{"k": 1})
	if err != nil {
		t.Fatalf("Convert map: %v", err)
	}
	v, err := gotObj.Get("k")
	if err != nil {
		t.Fatalf("Get(k): %v", err)
	}
	if i, _ := v.Int(); i != 1 {
		t.Errorf("k = %d, want 1", i)
	}
}

func TestConvertPassesThroughHeapValue(t *testing.T) {
	r := NewRegistry()
	hv := heap.Str("already a value")
	got, err := r.Convert(hv)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if s, _ := got.Strv(); s != "already a value" {
		t.Errorf("got %v, want pass-through", got)
	}
}

func TestConvertUnregisteredTypeIsTypeError(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Convert(customID(5)); err == nil {
		t.Fatal("expected an error for an unregistered custom type")
	}
}

func TestRegisterConverterIsUsed(t *testing.T) {
	r := NewRegistry()
	r.Register(reflect.TypeOf(customID(0)), func(v any) (heap.Value, error) {
		return heap.Int(int64(v.(customID))), nil
	})

	got, err := r.Convert(customID(9))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if i, _ := got.Int(); i != 9 {
		t.Errorf("got %d, want 9", i)
	}
}

func TestConcurrentLookupsOfSameTypeAreSafe(t *testing.T) {
	r := NewRegistry()
	r.Register(reflect.TypeOf(customID(0)), func(v any) (heap.Value, error) {
		return heap.Int(int64(v.(customID))), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			got, err := r.Convert(customID(n))
			if err != nil {
				t.Errorf("Convert: %v", err)
				return
			}
			if i64, _ := got.Int(); i64 != int64(n) {
				t.Errorf("got %d, want %d", i64, n)
			}
		}(i)
	}
	wg.Wait()
}

func TestFromWindows1252(t *testing.T) {
	// 0xe9 is "é" in Windows-1252.
	got, err := FromWindows1252([]byte{0x63, 0x61, 0xe9})
	if err != nil {
		t.Fatalf("FromWindows1252: %v", err)
	}
	s, _ := got.Strv()
	if s != "caé" {
		t.Errorf("got %q, want caé", s)
	}
}
