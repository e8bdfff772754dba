// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"gioui.org/shader"
)

// Attribute names the vertex stage must declare.
const (
	PositionAttrib = "aVertexPosition"
	TexCoordAttrib = "aTextureCoord"
)

// QuadSources describes a vertex and fragment shader pair for the
// screen quad. The GLSL 1.50 variants may be empty when only OpenGL ES
// or WebGL contexts are targeted.
func QuadSources(vert100ES, frag100ES, vert150, frag150 string) (vert, frag shader.Sources) {
	vert = shader.Sources{
		Name:      "quad.vert",
		GLSL100ES: vert100ES,
		GLSL150:   vert150,
		Inputs: []shader.InputLocation{
			{Name: PositionAttrib, Location: 0, Type: shader.DataTypeFloat, Size: positionSize},
			{Name: TexCoordAttrib, Location: 1, Type: shader.DataTypeFloat, Size: texCoordSize},
		},
	}
	frag = shader.Sources{
		Name:      "quad.frag",
		GLSL100ES: frag100ES,
		GLSL150:   frag150,
		Textures: []shader.TextureBinding{
			{Name: SamplerName, Binding: 0},
		},
	}
	return vert, frag
}
