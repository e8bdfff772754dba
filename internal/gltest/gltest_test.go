// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package gltest

import (
	"strings"
	"testing"

	"github.com/quadscreen/quadscreen/internal/gl"
)

func TestParseGLSL(t *testing.T) {
	const vert = `
#version 100
// a comment mentioning attribute vec4 aGhost;
attribute vec4 aPos;
attribute highp vec2 aUV;
attribute vec3 aUnused;
uniform mediump float uScale;
varying vec2 vUV;
/* block
comment */
void main() {
	gl_Position = aPos * uScale;
	vUV = aUV;
}
`
	tu, log := parseGLSL(gl.VERTEX_SHADER, vert)
	if log != "" {
		t.Fatalf("unexpected log: %s", log)
	}
	if !tu.hasMain {
		t.Error("main not found")
	}
	var got []string
	for _, a := range tu.attribs {
		if a.active {
			got = append(got, a.name)
		}
	}
	if exp := []string{"aPos", "aUV"}; strings.Join(got, ",") != strings.Join(exp, ",") {
		t.Errorf("got active attributes %v, expected %v", got, exp)
	}
	if len(tu.uniforms) != 1 || tu.uniforms[0].name != "uScale" {
		t.Errorf("got uniforms %v, expected [uScale]", tu.uniforms)
	}
}

func TestParseGLSLErrors(t *testing.T) {
	tests := []struct {
		typ gl.Enum
		src string
		exp string
	}{
		{gl.VERTEX_SHADER, "void main() {\n\tgl_Position = vec4(1.0;\n}\n", "0:3: '}'"},
		{gl.VERTEX_SHADER, "void main() {\n", "unexpected end of file"},
		{gl.FRAGMENT_SHADER, "attribute vec2 a;\nvoid main() { gl_FragColor = vec4(a, 0.0, 1.0); }", "vertex shaders only"},
	}
	for _, test := range tests {
		_, log := parseGLSL(test.typ, test.src)
		if !strings.Contains(log, test.exp) {
			t.Errorf("%q: got log %q, expected it to contain %q", test.src, log, test.exp)
		}
	}
}

func TestBufferTargetIsFixed(t *testing.T) {
	f := New("WebGL 1.0")
	b := f.CreateBuffer()
	f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	if err := f.GetError(); err != gl.NO_ERROR {
		t.Fatalf("first bind: got error %#x", err)
	}
	f.BindBuffer(gl.ARRAY_BUFFER, b)
	if err := f.GetError(); err != gl.INVALID_OPERATION {
		t.Errorf("rebind to another target: got error %#x, expected INVALID_OPERATION", err)
	}
	if got := f.BoundBuffer(gl.ARRAY_BUFFER); got.Valid() {
		t.Errorf("array buffer bound to %d after failed bind", got.V)
	}
}

func TestFirstErrorSticks(t *testing.T) {
	f := New("OpenGL ES 3.0")
	f.BindTexture(0x1234, gl.Texture{})
	f.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{V: 42})
	if got := f.GetError(); got != gl.INVALID_ENUM {
		t.Errorf("got %#x, expected INVALID_ENUM", got)
	}
	if got := f.GetError(); got != gl.NO_ERROR {
		t.Errorf("got %#x after GetError, expected NO_ERROR", got)
	}
}

func TestNPOTMipmapOnES2(t *testing.T) {
	f := New("WebGL 1.0")
	tex := f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, tex)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 3, 5, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	f.GenerateMipmap(gl.TEXTURE_2D)
	if got := f.GetError(); got != gl.INVALID_OPERATION {
		t.Errorf("got %#x, expected INVALID_OPERATION", got)
	}
	if got := f.MipLevels(tex); got != 1 {
		t.Errorf("got %d mip levels, expected 1", got)
	}
}

func TestTexSubImage(t *testing.T) {
	f := New("OpenGL ES 3.0")
	tex := f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, tex)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	f.TexSubImage2D(gl.TEXTURE_2D, 0, 1, 1, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, []byte{1, 2, 3, 4})
	if err := f.GetError(); err != gl.NO_ERROR {
		t.Fatalf("got error %#x", err)
	}
	if got := f.Texel(tex, 1, 1); got.R != 1 || got.A != 4 {
		t.Errorf("got texel %v, expected {1 2 3 4}", got)
	}
	if got := f.Texel(tex, 0, 0); got.A != 0 {
		t.Errorf("got texel %v, expected zero", got)
	}
	f.TexSubImage2D(gl.TEXTURE_2D, 0, 1, 1, 2, 1, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 8))
	if got := f.GetError(); got != gl.INVALID_VALUE {
		t.Errorf("out of bounds update: got %#x, expected INVALID_VALUE", got)
	}
}

func TestDrawWithoutProgram(t *testing.T) {
	f := New("OpenGL ES 3.0")
	f.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_INT, 0)
	if got := f.GetError(); got != gl.INVALID_OPERATION {
		t.Errorf("got %#x, expected INVALID_OPERATION", got)
	}
	if len(f.Draws()) != 0 {
		t.Error("invalid draw was recorded")
	}
}
