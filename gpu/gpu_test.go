// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package gpu

import (
	"strings"
	"testing"

	"gioui.org/shader"

	"github.com/quadscreen/quadscreen/internal/gltest"
)

var _ Functions = (*gltest.Functions)(nil)

const (
	testVert = `attribute vec4 aVertexPosition;
attribute vec2 aTextureCoord;
varying highp vec2 vTextureCoord;
void main(void) {
	gl_Position = aVertexPosition;
	vTextureCoord = vec2(aTextureCoord.x, 1.0 - aTextureCoord.y);
}
`
	testFrag = `precision mediump float;
varying highp vec2 vTextureCoord;
uniform sampler2D uSampler;
void main(void) {
	gl_FragColor = texture2D(uSampler, vTextureCoord);
}
`
	testVert150 = `#version 150
in vec3 aVertexPosition;
in vec2 aTextureCoord;
out vec2 vTextureCoord;
void main() {
	gl_Position = vec4(aVertexPosition, 1.0);
	vTextureCoord = vec2(aTextureCoord.x, 1.0 - aTextureCoord.y);
}
`
	testFrag150 = `#version 150
uniform sampler2D uSampler;
in vec2 vTextureCoord;
out vec4 fragColor;
void main() {
	fragColor = texture(uSampler, vTextureCoord);
}
`
	brokenVert = `attribute vec4 aVertexPosition;
void main(void) {
	gl_Position = vec4(aVertexPosition.xyz, 1.0;
}
`
)

func testSources() (vert, frag shader.Sources) {
	return QuadSources(testVert, testFrag, testVert150, testFrag150)
}

func newTestContext(t *testing.T, version string) (*Context, *gltest.Functions) {
	t.Helper()
	f := gltest.New(version)
	ctx, err := NewContext(f)
	if err != nil {
		t.Fatal(err)
	}
	return ctx, f
}

func newTestScreen(t *testing.T, version string, opts Options) (*Screen, *gltest.Functions) {
	t.Helper()
	f := gltest.New(version)
	if opts.Vertex.Name == "" {
		opts.Vertex, opts.Fragment = testSources()
	}
	s, err := NewScreen(f, opts)
	if err != nil {
		t.Fatal(err)
	}
	return s, f
}

// countCalls returns the number of traced calls to the GL function
// fn.
func countCalls(f *gltest.Functions, fn string) int {
	n := 0
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, fn+"(") {
			n++
		}
	}
	return n
}
