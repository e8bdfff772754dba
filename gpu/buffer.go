// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
	"github.com/quadscreen/quadscreen/internal/unsafe"
)

// Buffer is an immutable GPU buffer created for a single target.
type Buffer struct {
	obj    gl.Buffer
	target BufferTarget
	size   int
}

// Target returns the binding point the buffer was created for.
func (b Buffer) Target() BufferTarget {
	return b.target
}

// Size returns the buffer size in bytes.
func (b Buffer) Size() int {
	return b.size
}

// NewBuffer creates a buffer for target and uploads data with a
// static draw usage hint.
func (c *Context) NewBuffer(target BufferTarget, data []byte) (Buffer, error) {
	glErr(c.funcs)
	obj := c.funcs.CreateBuffer()
	if !obj.Valid() {
		return Buffer{}, fmt.Errorf("gpu: glCreateBuffer failed for %s buffer", target)
	}
	glTarget := target.glEnum()
	c.state.bindBuffer(c.funcs, glTarget, obj)
	c.funcs.BufferData(glTarget, len(data), gl.STATIC_DRAW, data)
	if err := glErr(c.funcs); err != nil {
		return Buffer{}, fmt.Errorf("gpu: upload %s buffer: %w", target, err)
	}
	b := Buffer{obj: obj, target: target, size: len(data)}
	if target == BufferTargetIndices {
		c.indices = b
	}
	return b, nil
}

// NewBufferOf is like NewBuffer for a typed slice, uploaded in native
// byte order.
func NewBufferOf[T unsafe.Numeric](c *Context, target BufferTarget, data []T) (Buffer, error) {
	return c.NewBuffer(target, unsafe.BytesView(data))
}

// bindIndexBuffer makes b the element array buffer for the next draw.
func (c *Context) bindIndexBuffer(b Buffer) error {
	if b.target != BufferTargetIndices {
		return fmt.Errorf("gpu: %s buffer bound as index buffer", b.target)
	}
	c.state.bindBuffer(c.funcs, gl.ELEMENT_ARRAY_BUFFER, b.obj)
	c.indices = b
	return nil
}
