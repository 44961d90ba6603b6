package buffer_test

import (
	"testing"

	"github.com/colinmarc/svalue/buffer"
	"github.com/colinmarc/svalue/codec"
	"github.com/colinmarc/svalue/heap"
)

func TestValidateAcceptsWellFormedImages(t *testing.T) {
	nested := heap.NewObjectFrom(
		heap.Pair{Key: "list", Value: heap.NewArray(heap.Int(1), heap.Str("two"))},
		heap.Pair{Key: "name", Value: heap.Str("hive")},
	)
	data, err := codec.Finalize(nested)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := buffer.Validate(data); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsTruncatedImage(t *testing.T) {
	data, err := codec.Finalize(heap.Str("hello"))
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := buffer.Validate(data[:len(data)-1]); err == nil {
		t.Fatal("expected an error for a truncated image")
	}
}

func TestValidateRejectsBadTag(t *testing.T) {
	if err := buffer.Validate([]byte{0xff}); err == nil {
		t.Fatal("expected an error for an unrecognized tag")
	}
}

func TestValidateRejectsEmptyImage(t *testing.T) {
	if err := buffer.Validate(nil); err == nil {
		t.Fatal("expected an error for an empty image")
	}
}
