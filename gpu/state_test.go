// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package gpu

import (
	"testing"

	"github.com/quadscreen/quadscreen/internal/gl"
	"github.com/quadscreen/quadscreen/internal/gltest"
)

func TestStateSkipsRedundantBinds(t *testing.T) {
	f := gltest.New("OpenGL ES 3.0")
	var s glState
	b1, b2 := f.CreateBuffer(), f.CreateBuffer()
	s.bindBuffer(f, gl.ARRAY_BUFFER, b1)
	s.bindBuffer(f, gl.ARRAY_BUFFER, b1)
	s.bindBuffer(f, gl.ELEMENT_ARRAY_BUFFER, b2)
	s.bindBuffer(f, gl.ELEMENT_ARRAY_BUFFER, b2)
	if got := countCalls(f, "glBindBuffer"); got != 2 {
		t.Errorf("got %d glBindBuffer calls, expected 2", got)
	}
	tex := f.CreateTexture()
	s.bindTexture(f, 0, tex)
	s.bindTexture(f, 0, tex)
	s.bindTexture(f, 1, tex)
	if got := countCalls(f, "glBindTexture"); got != 2 {
		t.Errorf("got %d glBindTexture calls, expected 2", got)
	}
	if got := countCalls(f, "glActiveTexture"); got != 2 {
		t.Errorf("got %d glActiveTexture calls, expected 2", got)
	}
	s.enableVertexAttribArray(f, 3)
	s.enableVertexAttribArray(f, 3)
	if got := countCalls(f, "glEnableVertexAttribArray"); got != 1 {
		t.Errorf("got %d glEnableVertexAttribArray calls, expected 1", got)
	}
	if got := f.GetError(); got != gl.NO_ERROR {
		t.Errorf("got GL error %#x", got)
	}
}

func TestStateUnknownTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("binding an unknown target did not panic")
		}
	}()
	var s glState
	s.bindBuffer(gltest.New("OpenGL ES 3.0"), gl.TEXTURE_2D, gl.Buffer{})
}
