package svalue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colinmarc/svalue/internal/kind"
)

// String implements fmt.Stringer with a compact JSON-like rendering of
// the seven-case value model.
func (v Value) String() string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

// GoString implements fmt.GoStringer, annotating the rendering with
// which representation backs v.
func (v Value) GoString() string {
	rep := "heap"
	if v.isBuf {
		rep = "buffer"
	}
	return fmt.Sprintf("svalue.Value{%s: %s}", rep, v.String())
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.Kind() {
	case kind.Null:
		sb.WriteString("null")
	case kind.Boolean:
		b, _ := v.Bool()
		sb.WriteString(strconv.FormatBool(b))
	case kind.Integer:
		i, _ := v.Int()
		sb.WriteString(strconv.FormatInt(i, 10))
	case kind.Decimal:
		f, _ := v.Decimal()
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case kind.String:
		s, _ := v.Strv()
		sb.WriteString(strconv.Quote(s))
	case kind.Array:
		writeArray(sb, v)
	case kind.Object:
		writeObject(sb, v)
	}
}

func writeArray(sb *strings.Builder, v Value) {
	n, _ := v.Size()
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		elem, err := v.At(i)
		if err != nil {
			sb.WriteString("?")
			continue
		}
		writeValue(sb, elem)
	}
	sb.WriteByte(']')
}

func writeObject(sb *strings.Builder, v Value) {
	keys, vals, err := objectEntries(v)
	sb.WriteByte('{')
	if err == nil {
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")
			writeValue(sb, vals[i])
		}
	}
	sb.WriteByte('}')
}
