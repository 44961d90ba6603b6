package buffer_test

import (
	"testing"

	"github.com/colinmarc/svalue/buffer"
	"github.com/colinmarc/svalue/codec"
	"github.com/colinmarc/svalue/heap"
)

func encode(t *testing.T, hv heap.Value) buffer.Value {
	t.Helper()
	data, err := codec.Finalize(hv)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	bv, err := buffer.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return bv
}

func TestScalarAccessors(t *testing.T) {
	if b := encode(t, heap.Bool(true)); !b.BoolOr(false) {
		t.Error("Bool round trip failed")
	}
	if v := encode(t, heap.Int(123)); v.IntOr(0) != 123 {
		t.Error("Int round trip failed")
	}
	if v := encode(t, heap.Float(1.5)); v.DecimalOr(0) != 1.5 {
		t.Error("Decimal round trip failed")
	}
	if v := encode(t, heap.Str("hi")); v.StrvOr("") != "hi" {
		t.Error("Strv round trip failed")
	}
}

func TestTypeErrorOnMismatchedAccessor(t *testing.T) {
	v := encode(t, heap.Int(1))
	if _, err := v.Strv(); err == nil {
		t.Fatal("expected type error")
	}
	if got := v.StrvOr("default"); got != "default" {
		t.Errorf("StrvOr = %q, want default", got)
	}
}

func TestTruthy(t *testing.T) {
	if encode(t, heap.Null()).Truthy() {
		t.Error("null should not be truthy")
	}
	if !encode(t, heap.Int(0)).Truthy() {
		t.Error("zero integer should be truthy (only null/false are not)")
	}
	if encode(t, heap.Bool(false)).Truthy() {
		t.Error("false should not be truthy")
	}
}

func TestByteSizeMatchesDecodedLength(t *testing.T) {
	v := encode(t, heap.Str("hello world"))
	if v.ByteSize() <= 0 {
		t.Fatal("ByteSize should be positive")
	}
}
