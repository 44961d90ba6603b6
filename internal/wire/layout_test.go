package wire

import "testing"

func TestOffsetWidthFor(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 4},
		{1 << 20, 4},
	}
	for _, tt := range tests {
		if got := OffsetWidthFor(tt.size); got != tt.want {
			t.Errorf("OffsetWidthFor(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestStringTagFor(t *testing.T) {
	tests := []struct {
		length int
		tag    Tag
		width  int
	}{
		{0, TagSmallString, SmallStringLenSize},
		{SmallStringMaxLen, TagSmallString, SmallStringLenSize},
		{SmallStringMaxLen + 1, TagString, StringLenSize},
		{StringMaxLen, TagString, StringLenSize},
		{StringMaxLen + 1, TagBigString, BigStringLenSize},
	}
	for _, tt := range tests {
		tag, width := StringTagFor(tt.length)
		if tag != tt.tag || width != tt.width {
			t.Errorf("StringTagFor(%d) = (%v,%d), want (%v,%d)", tt.length, tag, width, tt.tag, tt.width)
		}
	}
}

func TestTagValid(t *testing.T) {
	if !TagObject.Valid() {
		t.Error("TagObject should be valid")
	}
	if Tag(0).Valid() {
		t.Error("Tag(0) should be invalid")
	}
	if Tag(200).Valid() {
		t.Error("Tag(200) should be invalid")
	}
}
