// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// SamplerName is the sampler uniform the fragment stage reads the
// display texture through.
const SamplerName = "uSampler"

// Draw activates texture unit unit, makes p current, points the
// sampler uniform at unit and draws indexCount 32-bit indices from the
// bound index buffer as triangles.
//
// The index buffer, attributes and texture must already be set up, and
// indexCount must not exceed the indices in the bound index buffer.
func (c *Context) Draw(p Program, unit, indexCount int) error {
	if unit < 0 || unit >= maxTextureUnits {
		return fmt.Errorf("gpu: texture unit %d out of range", unit)
	}
	if c.indices.target != BufferTargetIndices {
		return errors.New("gpu: draw: no index buffer bound")
	}
	if n := c.indices.size / 4; indexCount < 0 || indexCount > n {
		return fmt.Errorf("gpu: draw: %d indices out of range, the index buffer holds %d", indexCount, n)
	}
	c.state.activeTexture(c.funcs, gl.TEXTURE0+gl.Enum(unit))
	c.state.useProgram(c.funcs, p.obj)
	if u, ok := c.UniformLocation(p, SamplerName); ok {
		c.funcs.Uniform1i(u, unit)
	} else {
		Logger().Debug("gpu: sampler uniform not active", "name", SamplerName)
	}
	c.funcs.DrawElements(toGLDrawMode(DrawModeTriangles), indexCount, gl.UNSIGNED_INT, 0)
	if err := glErr(c.funcs); err != nil {
		return fmt.Errorf("gpu: draw: %w", err)
	}
	return nil
}

// Viewport sets the viewport rectangle.
func (c *Context) Viewport(x, y, width, height int) {
	c.funcs.Viewport(x, y, width, height)
}

// Clear clears the color buffer to the given color.
func (c *Context) Clear(r, g, b, a float32) {
	c.funcs.ClearColor(r, g, b, a)
	c.funcs.Clear(gl.COLOR_BUFFER_BIT)
}
