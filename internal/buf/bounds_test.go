package buf

import "testing"

func TestSlice(t *testing.T) {
	data := []byte("0123456789")

	tests := []struct {
		name    string
		off, n  int
		wantOK  bool
		wantLen int
	}{
		{"in bounds", 2, 3, true, 3},
		{"exact end", 7, 3, true, 3},
		{"past end", 8, 3, false, 0},
		{"negative offset", -1, 3, false, 0},
		{"negative length", 2, -1, false, 0},
		{"empty", 10, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Slice(data, tt.off, tt.n)
			if ok != tt.wantOK {
				t.Fatalf("Slice(%d,%d) ok = %v, want %v", tt.off, tt.n, ok, tt.wantOK)
			}
			if ok && len(got) != tt.wantLen {
				t.Fatalf("Slice(%d,%d) len = %d, want %d", tt.off, tt.n, len(got), tt.wantLen)
			}
		})
	}
}

func TestHas(t *testing.T) {
	data := make([]byte, 16)
	if !Has(data, 0, 16) {
		t.Error("Has(0,16) on 16-byte slice should be true")
	}
	if Has(data, 0, 17) {
		t.Error("Has(0,17) on 16-byte slice should be false")
	}
}

func TestAddOverflowSafe(t *testing.T) {
	if _, ok := AddOverflowSafe(int(^uint(0)>>1), 1); ok {
		t.Error("expected overflow to be detected")
	}
	if sum, ok := AddOverflowSafe(3, 4); !ok || sum != 7 {
		t.Errorf("AddOverflowSafe(3,4) = %d,%v want 7,true", sum, ok)
	}
}
