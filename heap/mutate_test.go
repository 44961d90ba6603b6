package heap

import (
	"strings"
	"testing"

	"github.com/colinmarc/svalue/internal/errs"
	"github.com/colinmarc/svalue/internal/wire"
)

func TestInsertForcesNullToObjectOrArray(t *testing.T) {
	var v Value
	if _, err := v.Insert("a", Int(1)); err != nil {
		t.Fatalf("Insert on null by string key: %v", err)
	}
	if !v.IsObject() {
		t.Fatalf("kind after string-key insert = %s, want object", v.Kind())
	}

	var w Value
	if _, err := w.Insert(0, Int(1)); err != nil {
		t.Fatalf("Insert on null by int key: %v", err)
	}
	if !w.IsArray() {
		t.Fatalf("kind after int-key insert = %s, want array", w.Kind())
	}
}

func TestInsertByStringOnArrayIsTypeError(t *testing.T) {
	v := NewArray(Int(1))
	if _, err := v.Insert("a", Int(1)); !errs.Type.Is(err) {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestInsertArrayIndexOutOfRangeIsTypeError(t *testing.T) {
	v := NewArray(Int(1))
	if _, err := v.Insert(5, Int(2)); !errs.Type.Is(err) {
		t.Fatalf("expected type error for out-of-range insert index, got %v", err)
	}
}

func TestInsertSplicesArray(t *testing.T) {
	v := NewArray(Int(1), Int(3))
	idx, err := v.Insert(1, Int(2))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if idx != 1 {
		t.Errorf("Insert index = %d, want 1", idx)
	}
	for i, want := range []int64{1, 2, 3} {
		got, _ := v.At(i)
		n, _ := got.Int()
		if n != want {
			t.Errorf("element %d = %d, want %d", i, n, want)
		}
	}
}

func TestInsertRejectsOverlongKey(t *testing.T) {
	v := NewObject()
	longKey := strings.Repeat("k", wire.ObjectKeyMaxLen+1)
	if _, err := v.Insert(longKey, Int(1)); !errs.Invalid.Is(err) {
		t.Fatalf("expected invalid-argument error for overlong key, got %v", err)
	}
}

func TestSetRequiresExistingKey(t *testing.T) {
	v := NewObjectFrom(Pair{Key: "a", Value: Int(1)})
	if _, err := v.Set("missing", Int(2)); !errs.Range.Is(err) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
	if _, err := v.Set("a", Int(9)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := v.Get("a")
	n, _ := got.Int()
	if n != 9 {
		t.Errorf("a = %d, want 9", n)
	}
}

func TestEraseMissingKeyIsNoopReturningSize(t *testing.T) {
	v := NewObjectFrom(Pair{Key: "a", Value: Int(1)})
	pos, err := v.Erase("missing")
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if pos != 1 {
		t.Errorf("Erase(missing) returned %d, want 1 (current size)", pos)
	}
	if n, _ := v.Size(); n != 1 {
		t.Errorf("Size() after no-op erase = %d, want 1", n)
	}
}

func TestEraseOutOfRangeIndexIsNoop(t *testing.T) {
	v := NewArray(Int(1), Int(2))
	pos, err := v.Erase(10)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if pos != 2 {
		t.Errorf("Erase(10) returned %d, want 2", pos)
	}
}

func TestEraseRemovesAndShifts(t *testing.T) {
	v := NewArray(Int(1), Int(2), Int(3))
	pos, err := v.Erase(1)
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if pos != 1 {
		t.Errorf("Erase(1) returned %d, want 1", pos)
	}
	if n, _ := v.Size(); n != 2 {
		t.Fatalf("Size() = %d, want 2", n)
	}
	got, _ := v.At(1)
	x, _ := got.Int()
	if x != 3 {
		t.Errorf("element 1 = %d, want 3", x)
	}
}

func TestPushFrontAndPushBack(t *testing.T) {
	var v Value
	if _, err := v.PushBack(Int(2)); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if _, err := v.PushFront(Int(1)); err != nil {
		t.Fatalf("PushFront: %v", err)
	}
	if _, err := v.PushBack(Int(3)); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	for i, want := range []int64{1, 2, 3} {
		got, _ := v.At(i)
		n, _ := got.Int()
		if n != want {
			t.Errorf("element %d = %d, want %d", i, n, want)
		}
	}
}

func TestPopFrontAndPopBack(t *testing.T) {
	v := NewArray(Int(1), Int(2), Int(3))

	front, err := v.PopFront()
	if err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if n, _ := front.Int(); n != 1 {
		t.Errorf("PopFront = %d, want 1", n)
	}

	back, err := v.PopBack()
	if err != nil {
		t.Fatalf("PopBack: %v", err)
	}
	if n, _ := back.Int(); n != 3 {
		t.Errorf("PopBack = %d, want 3", n)
	}

	if n, _ := v.Size(); n != 1 {
		t.Fatalf("Size() = %d, want 1", n)
	}
}

func TestPopOnEmptyArrayIsRangeError(t *testing.T) {
	v := NewArray()
	if _, err := v.PopBack(); !errs.Range.Is(err) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
	if _, err := v.PopFront(); !errs.Range.Is(err) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestClearEmptiesArrayAndObject(t *testing.T) {
	a := NewArray(Int(1), Int(2))
	if err := a.Clear(); err != nil {
		t.Fatalf("Clear array: %v", err)
	}
	if n, _ := a.Size(); n != 0 {
		t.Errorf("array Size() after Clear = %d, want 0", n)
	}

	o := NewObjectFrom(Pair{Key: "a", Value: Int(1)})
	if err := o.Clear(); err != nil {
		t.Fatalf("Clear object: %v", err)
	}
	if n, _ := o.Size(); n != 0 {
		t.Errorf("object Size() after Clear = %d, want 0", n)
	}
}

func TestClearOnScalarIsTypeError(t *testing.T) {
	v := Int(1)
	if err := v.Clear(); !errs.Type.Is(err) {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestAddFieldAndRemoveFieldAreSugar(t *testing.T) {
	v := NewObject()
	if _, err := v.AddField("a", Int(1)); err != nil {
		t.Fatalf("AddField: %v", err)
	}
	if !v.HasKey("a") {
		t.Fatal("HasKey(a) = false after AddField")
	}
	if _, err := v.RemoveField("a"); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}
	if v.HasKey("a") {
		t.Fatal("HasKey(a) = true after RemoveField")
	}
}

func TestInjectDoesNotMutateOriginal(t *testing.T) {
	orig := NewObjectFrom(Pair{Key: "a", Value: Int(1)})
	next, err := orig.Inject(Pair{Key: "b", Value: Int(2)}, Pair{Key: "a", Value: Int(9)})
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}

	if n, _ := orig.Size(); n != 1 {
		t.Errorf("orig.Size() = %d, want 1 (Inject must not mutate receiver)", n)
	}
	if n, _ := next.Size(); n != 2 {
		t.Errorf("next.Size() = %d, want 2", n)
	}
	a, _ := next.Get("a")
	if x, _ := a.Int(); x != 9 {
		t.Errorf("next[a] = %d, want 9 (overwrite)", x)
	}
}

func TestProjectPreservesOriginalOrderAndSkipsMissing(t *testing.T) {
	orig := NewObjectFrom(
		Pair{Key: "a", Value: Int(1)},
		Pair{Key: "b", Value: Int(2)},
		Pair{Key: "c", Value: Int(3)},
	)
	proj, err := orig.Project("c", "a", "missing")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if n, _ := proj.Size(); n != 2 {
		t.Fatalf("Size() = %d, want 2", n)
	}
	if proj.obj.fields[0].key.stringView() != "a" || proj.obj.fields[1].key.stringView() != "c" {
		t.Error("Project did not preserve the original object's field order")
	}
}

func TestGetNestedWalksAndStopsAtMissing(t *testing.T) {
	inner := NewObjectFrom(Pair{Key: "b", Value: Int(42)})
	outer := NewObjectFrom(Pair{Key: "a", Value: inner})

	got := outer.GetNested("a/b", '/')
	if n, _ := got.Int(); n != 42 {
		t.Errorf("GetNested(a/b) = %v, want 42", n)
	}

	if !outer.GetNested("a/missing", '/').IsNull() {
		t.Error("GetNested should be null for a missing segment")
	}
	if !outer.GetNested("a/b/c", '/').IsNull() {
		t.Error("GetNested should be null when walking through a non-object")
	}
}

func TestMixedNumericArray(t *testing.T) {
	v := NewArray(Int(1), Float(2.5), Int(3))
	sum := 0.0
	for i := 0; i < 3; i++ {
		e, _ := v.At(i)
		n, err := e.Numeric()
		if err != nil {
			t.Fatalf("Numeric: %v", err)
		}
		sum += n
	}
	if sum != 6.5 {
		t.Errorf("sum = %v, want 6.5", sum)
	}
}
