// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// AttribBinding describes how a vertex attribute reads from a buffer.
// Location is -1 when the program does not declare the attribute.
type AttribBinding struct {
	Buffer     Buffer
	Name       string
	Location   int
	Size       int
	Type       gl.Enum
	Normalized bool
	Stride     int
	Offset     int
}

// Bound reports whether the binding configured an attribute slot.
func (a AttribBinding) Bound() bool {
	return a.Location >= 0
}

// BindAttribute feeds the named attribute of p from buf, size floats
// per vertex, tightly packed from offset 0. An attribute p does not
// declare (or the linker removed) is left alone.
func (c *Context) BindAttribute(p Program, buf Buffer, name string, size int) (AttribBinding, error) {
	if buf.target != BufferTargetVertices {
		return AttribBinding{}, fmt.Errorf("gpu: attribute %q: %s buffer is not a vertex buffer", name, buf.target)
	}
	if size < 1 || size > 4 {
		return AttribBinding{}, fmt.Errorf("gpu: attribute %q: invalid component count %d", name, size)
	}
	b := AttribBinding{
		Buffer: buf,
		Name:   name,
		Size:   size,
		Type:   gl.FLOAT,
	}
	c.state.bindBuffer(c.funcs, gl.ARRAY_BUFFER, buf.obj)
	b.Location = c.AttribLocation(p, name)
	if b.Location < 0 {
		Logger().Debug("gpu: attribute not active, skipping", "name", name)
		return b, nil
	}
	if b.Location >= maxVertexAttribs {
		return AttribBinding{}, fmt.Errorf("gpu: attribute %q: location %d exceeds %d slots", name, b.Location, maxVertexAttribs)
	}
	c.state.vertexAttribPointer(c.funcs, buf.obj, b.Location, b.Size, b.Type, b.Normalized, b.Stride, b.Offset)
	c.state.enableVertexAttribArray(c.funcs, b.Location)
	return b, nil
}
