// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGoString(t *testing.T) {
	tests := [][2]string{
		{"Hello\x00", "Hello"},
		{"\x00", ""},
		{"no terminator", "no terminator"},
	}
	for _, test := range tests {
		got := GoString([]byte(test[0]))
		if exp := test[1]; exp != got {
			t.Errorf("expected %q got %q", exp, got)
		}
	}
}

func TestCString(t *testing.T) {
	b := CString("aTextureCoord")
	if len(b) != len("aTextureCoord")+1 || b[len(b)-1] != 0 {
		t.Fatalf("got %q, expected a NUL-terminated copy", b)
	}
	if got := GoString(b); got != "aTextureCoord" {
		t.Errorf("round trip: got %q", got)
	}
}

func TestBytesView(t *testing.T) {
	floats := []float32{1, -1, 0.5}
	b := BytesView(floats)
	if len(b) != 12 {
		t.Fatalf("got %d bytes, expected 12", len(b))
	}
	for i, f := range floats {
		if got := math.Float32frombits(binary.NativeEndian.Uint32(b[i*4:])); got != f {
			t.Errorf("element %d: got %v, expected %v", i, got, f)
		}
	}
	idx := []uint32{0, 1, 3}
	b = BytesView(idx)
	if got := binary.NativeEndian.Uint32(b[8:]); got != 3 {
		t.Errorf("index 2: got %d, expected 3", got)
	}
	if BytesView([]uint16(nil)) != nil {
		t.Error("empty slice should give a nil view")
	}
}
