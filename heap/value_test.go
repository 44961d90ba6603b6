package heap

import "testing"

func TestNullIsZeroValue(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Fatal("zero Value is not null")
	}
	if !Null().IsNull() {
		t.Fatal("Null() is not null")
	}
}

func TestPrimitiveConstructorsAndAccessors(t *testing.T) {
	if b, err := Bool(true).Bool(); err != nil || !b {
		t.Errorf("Bool: got (%v, %v)", b, err)
	}
	if i, err := Int(42).Int(); err != nil || i != 42 {
		t.Errorf("Int: got (%v, %v)", i, err)
	}
	if f, err := Float(3.5).Decimal(); err != nil || f != 3.5 {
		t.Errorf("Float: got (%v, %v)", f, err)
	}
}

func TestNumericWidensIntAndDecimal(t *testing.T) {
	if n, err := Int(7).Numeric(); err != nil || n != 7 {
		t.Errorf("Numeric(Int): got (%v, %v)", n, err)
	}
	if n, err := Float(1.5).Numeric(); err != nil || n != 1.5 {
		t.Errorf("Numeric(Float): got (%v, %v)", n, err)
	}
	if _, err := Str("x").Numeric(); err == nil {
		t.Error("expected type error for Numeric on string")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null(), false},
		{Bool(false), false},
		{Bool(true), true},
		{Int(0), true},
		{Str(""), true},
		{NewArray(), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%v kind=%s) = %v, want %v", c.v, c.v.Kind(), got, c.want)
		}
	}
}

func TestSizeRejectsScalars(t *testing.T) {
	if _, err := Int(1).Size(); err == nil {
		t.Fatal("expected type error for Size on integer")
	}
}

func TestAliasSharesContainerAndBumpsRefcount(t *testing.T) {
	a := NewArray(Int(1), Int(2))
	b := a.Alias()

	if a.arr != b.arr {
		t.Fatal("Alias did not share the underlying container")
	}
	if got := a.arr.rc.Count(); got != 2 {
		t.Errorf("refcount after Alias = %d, want 2", got)
	}

	if _, err := a.PushBack(Int(3)); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if a.arr == b.arr {
		t.Fatal("mutating a shared array after Alias should copy-on-write")
	}
	if n, _ := b.Size(); n != 2 {
		t.Errorf("b.Size() = %d, want 2 (b must be unaffected by a's mutation)", n)
	}
	if n, _ := a.Size(); n != 3 {
		t.Errorf("a.Size() = %d, want 3", n)
	}
}
