// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// BufferTarget is the binding point a buffer is created for. A buffer
// is never bound to any other target.
type BufferTarget uint8

// ShaderStage selects the programmable stage of a shader object.
type ShaderStage uint8

type TextureFilter uint8

type TextureWrap uint8

type DrawMode uint8

const (
	BufferTargetVertices BufferTarget = iota
	BufferTargetIndices
)

const (
	StageVertex ShaderStage = iota
	StageFragment
)

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
)

const (
	DrawModeTriangles DrawMode = iota
	DrawModeTriangleStrip
)

func (t BufferTarget) String() string {
	switch t {
	case BufferTargetVertices:
		return "vertices"
	case BufferTargetIndices:
		return "indices"
	default:
		return fmt.Sprintf("BufferTarget(%d)", uint8(t))
	}
}

func (t BufferTarget) glEnum() gl.Enum {
	switch t {
	case BufferTargetVertices:
		return gl.ARRAY_BUFFER
	case BufferTargetIndices:
		return gl.ELEMENT_ARRAY_BUFFER
	default:
		panic("unsupported buffer target")
	}
}

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderStage(%d)", uint8(s))
	}
}

func (s ShaderStage) glEnum() gl.Enum {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		panic("unsupported shader stage")
	}
}

func (f TextureFilter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	default:
		return fmt.Sprintf("TextureFilter(%d)", uint8(f))
	}
}

func toTexFilter(f TextureFilter) int {
	switch f {
	case FilterNearest:
		return gl.NEAREST
	case FilterLinear:
		return gl.LINEAR
	default:
		panic("unsupported texture filter")
	}
}

func (w TextureWrap) String() string {
	switch w {
	case WrapRepeat:
		return "repeat"
	case WrapClampToEdge:
		return "clamp-to-edge"
	default:
		return fmt.Sprintf("TextureWrap(%d)", uint8(w))
	}
}

func toTexWrap(w TextureWrap) int {
	switch w {
	case WrapRepeat:
		return gl.REPEAT
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	default:
		panic("unsupported texture wrap")
	}
}

func toGLDrawMode(mode DrawMode) gl.Enum {
	switch mode {
	case DrawModeTriangleStrip:
		return gl.TRIANGLE_STRIP
	case DrawModeTriangles:
		return gl.TRIANGLES
	default:
		panic("unsupported draw mode")
	}
}
