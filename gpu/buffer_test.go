// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package gpu

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/quadscreen/quadscreen/internal/gl"
)

func TestNewBufferOf(t *testing.T) {
	ctx, f := newTestContext(t, "OpenGL ES 3.0")
	indices := []uint32{0, 1, 3, 1, 2, 3}
	b, err := NewBufferOf(ctx, BufferTargetIndices, indices)
	if err != nil {
		t.Fatal(err)
	}
	if b.Target() != BufferTargetIndices || b.Size() != 24 {
		t.Errorf("got %s buffer of %d bytes, expected indices of 24", b.Target(), b.Size())
	}
	exp := make([]byte, 0, 24)
	for _, i := range indices {
		exp = binary.NativeEndian.AppendUint32(exp, i)
	}
	if got := f.BufferContents(b.obj); !bytes.Equal(got, exp) {
		t.Errorf("got contents %v, expected %v", got, exp)
	}
	if got := f.BoundBuffer(gl.ELEMENT_ARRAY_BUFFER); !got.Equal(b.obj) {
		t.Errorf("got element buffer %d bound, expected %d", got.V, b.obj.V)
	}
}

func TestBuffersKeepTheirTarget(t *testing.T) {
	ctx, f := newTestContext(t, "WebGL 1.0")
	vtx, err := NewBufferOf(ctx, BufferTargetVertices, []float32{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	idx, err := NewBufferOf(ctx, BufferTargetIndices, []uint32{0})
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.bindIndexBuffer(idx); err != nil {
		t.Fatal(err)
	}
	if err := ctx.bindIndexBuffer(vtx); err == nil {
		t.Error("vertex buffer bound as index buffer")
	}
	if got := f.GetError(); got != gl.NO_ERROR {
		t.Errorf("got GL error %#x", got)
	}
}
