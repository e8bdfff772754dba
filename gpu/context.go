// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// Context issues pipeline operations on a GL context and tracks the
// bindings they make. A Context is not safe for concurrent use; the
// underlying GL context must be current on the calling thread.
type Context struct {
	funcs Functions
	state glState
	// indices is the buffer bound to the element array target.
	indices Buffer

	glver [2]int
	gles  bool
}

// NewContext wraps f. It queries the GL version to select shader
// variants and to decide whether a vertex array object is required.
func NewContext(f Functions) (*Context, error) {
	glVer := f.GetString(gl.VERSION)
	if glVer == "" {
		// glGetString returns NULL without a current context.
		return nil, errors.New("gpu: no current GL context")
	}
	ver, gles, err := gl.ParseGLVersion(glVer)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	c := &Context{
		funcs: f,
		glver: ver,
		gles:  gles,
	}
	if !gles && ver[0] >= 3 {
		// Core desktop profiles draw nothing without a bound vertex array.
		va := f.CreateVertexArray()
		if !va.Valid() {
			return nil, errors.New("gpu: glGenVertexArrays failed")
		}
		c.state.bindVertexArray(f, va)
	}
	Logger().Info("gpu: context", "version", glVer, "gles", gles)
	return c, nil
}

// Version returns the parsed GL version and whether it is OpenGL ES
// (WebGL counts as ES).
func (c *Context) Version() (ver [2]int, gles bool) {
	return c.glver, c.gles
}

// es2 reports whether the context is limited to OpenGL ES 2.0
// (WebGL 1) texture rules.
func (c *Context) es2() bool {
	return c.gles && c.glver[0] < 3
}

func glErr(f Functions) error {
	if st := f.GetError(); st != gl.NO_ERROR {
		return fmt.Errorf("glGetError: %#x", st)
	}
	return nil
}
