// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package gltest

import (
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
)

var enumNames = map[gl.Enum]string{
	gl.ARRAY_BUFFER:          "GL_ARRAY_BUFFER",
	gl.CLAMP_TO_EDGE:         "GL_CLAMP_TO_EDGE",
	gl.COLOR_BUFFER_BIT:      "GL_COLOR_BUFFER_BIT",
	gl.ELEMENT_ARRAY_BUFFER:  "GL_ELEMENT_ARRAY_BUFFER",
	gl.FLOAT:                 "GL_FLOAT",
	gl.FRAGMENT_SHADER:       "GL_FRAGMENT_SHADER",
	gl.LINEAR:                "GL_LINEAR",
	gl.NEAREST:               "GL_NEAREST",
	gl.NEAREST_MIPMAP_LINEAR: "GL_NEAREST_MIPMAP_LINEAR",
	gl.REPEAT:                "GL_REPEAT",
	gl.RGBA:                  "GL_RGBA",
	gl.STATIC_DRAW:           "GL_STATIC_DRAW",
	gl.TEXTURE_2D:            "GL_TEXTURE_2D",
	gl.TEXTURE_MAG_FILTER:    "GL_TEXTURE_MAG_FILTER",
	gl.TEXTURE_MIN_FILTER:    "GL_TEXTURE_MIN_FILTER",
	gl.TEXTURE_WRAP_S:        "GL_TEXTURE_WRAP_S",
	gl.TEXTURE_WRAP_T:        "GL_TEXTURE_WRAP_T",
	gl.TEXTURE0:              "GL_TEXTURE0",
	gl.TEXTURE0 + 1:          "GL_TEXTURE1",
	gl.TRIANGLE_STRIP:        "GL_TRIANGLE_STRIP",
	gl.TRIANGLES:             "GL_TRIANGLES",
	gl.UNSIGNED_BYTE:         "GL_UNSIGNED_BYTE",
	gl.UNSIGNED_INT:          "GL_UNSIGNED_INT",
	gl.UNSIGNED_SHORT:        "GL_UNSIGNED_SHORT",
	gl.VERTEX_SHADER:         "GL_VERTEX_SHADER",
}

func enumString(e gl.Enum) string {
	if n, ok := enumNames[e]; ok {
		return n
	}
	return fmt.Sprintf("%#x", uint(e))
}
