// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"github.com/quadscreen/quadscreen/internal/gl"
)

const (
	maxVertexAttribs = 8
	maxTextureUnits  = 2
)

// glState tracks the bindings the pipeline has made so that every
// operation sees the GL state as an explicit value instead of
// relying on what the previous call happened to leave bound.
type glState struct {
	arrayBuf    gl.Buffer
	elemBuf     gl.Buffer
	prog        gl.Program
	vertArray   gl.VertexArray
	vertAttribs [maxVertexAttribs]struct {
		obj        gl.Buffer
		enabled    bool
		size       int
		typ        gl.Enum
		normalized bool
		stride     int
		offset     int
	}
	texUnits struct {
		active gl.Enum
		binds  [maxTextureUnits]gl.Texture
	}
}

func (s *glState) bindBuffer(f Functions, target gl.Enum, buf gl.Buffer) {
	switch target {
	case gl.ARRAY_BUFFER:
		if buf.Equal(s.arrayBuf) {
			return
		}
		s.arrayBuf = buf
	case gl.ELEMENT_ARRAY_BUFFER:
		if buf.Equal(s.elemBuf) {
			return
		}
		s.elemBuf = buf
	default:
		panic("unknown buffer target")
	}
	f.BindBuffer(target, buf)
}

func (s *glState) enableVertexAttribArray(f Functions, idx int) {
	a := &s.vertAttribs[idx]
	if !a.enabled {
		f.EnableVertexAttribArray(gl.Attrib(idx))
		a.enabled = true
	}
}

func (s *glState) vertexAttribPointer(f Functions, buf gl.Buffer, idx, size int, typ gl.Enum, normalized bool, stride, offset int) {
	s.bindBuffer(f, gl.ARRAY_BUFFER, buf)
	a := &s.vertAttribs[idx]
	a.obj = buf
	a.size = size
	a.typ = typ
	a.normalized = normalized
	a.stride = stride
	a.offset = offset
	f.VertexAttribPointer(gl.Attrib(idx), a.size, a.typ, a.normalized, a.stride, a.offset)
}

func (s *glState) activeTexture(f Functions, unit gl.Enum) {
	if unit != s.texUnits.active {
		f.ActiveTexture(unit)
		s.texUnits.active = unit
	}
}

func (s *glState) bindTexture(f Functions, unit int, t gl.Texture) {
	s.activeTexture(f, gl.TEXTURE0+gl.Enum(unit))
	if !t.Equal(s.texUnits.binds[unit]) {
		f.BindTexture(gl.TEXTURE_2D, t)
		s.texUnits.binds[unit] = t
	}
}

func (s *glState) bindVertexArray(f Functions, a gl.VertexArray) {
	if !a.Equal(s.vertArray) {
		f.BindVertexArray(a)
		s.vertArray = a
	}
}

func (s *glState) useProgram(f Functions, p gl.Program) {
	if !p.Equal(s.prog) {
		f.UseProgram(p)
		s.prog = p
	}
}
