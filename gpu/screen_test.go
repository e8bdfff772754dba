// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package gpu

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"gioui.org/shader"

	"github.com/quadscreen/quadscreen/internal/gl"
	"github.com/quadscreen/quadscreen/internal/gltest"
)

func TestNewScreen(t *testing.T) {
	s, f := newTestScreen(t, "OpenGL ES 3.0", Options{})
	tex := s.Texture()
	if tex.Width != DefaultSize.X || tex.Height != DefaultSize.Y {
		t.Errorf("got texture size %dx%d, expected %v", tex.Width, tex.Height, DefaultSize)
	}
	for _, p := range []struct {
		name gl.Enum
		exp  int
	}{
		{gl.TEXTURE_WRAP_S, gl.REPEAT},
		{gl.TEXTURE_WRAP_T, gl.REPEAT},
		{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
		{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
	} {
		if got := f.TexParameter(tex.obj, p.name); got != p.exp {
			t.Errorf("texture parameter %#x: got %#x, expected %#x", p.name, got, p.exp)
		}
	}
	if got := f.MipLevels(tex.obj); got < 2 {
		t.Errorf("got %d mip levels, expected a generated chain", got)
	}
	img := f.Image(tex.obj)
	if img == nil {
		t.Fatal("texture has no image")
	}
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("byte %d of a blank texture is %d", i, b)
		}
	}
	attrs := s.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("got %d attributes, expected 2", len(attrs))
	}
	for i, exp := range []struct {
		name string
		size int
	}{{PositionAttrib, 3}, {TexCoordAttrib, 2}} {
		if a := attrs[i]; a.Name != exp.name || a.Size != exp.size || !a.Bound() {
			t.Errorf("attribute %d: got %+v, expected %s of size %d", i, a, exp.name, exp.size)
		}
	}
	if got := f.GetError(); got != gl.NO_ERROR {
		t.Errorf("got GL error %#x", got)
	}
}

func TestScreenDraw(t *testing.T) {
	clear := [4]float32{1, 0, 0, 1}
	s, f := newTestScreen(t, "OpenGL ES 3.0", Options{ClearColor: clear})
	if err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if got := f.GetError(); got != gl.NO_ERROR {
		t.Errorf("got GL error %#x after draw", got)
	}
	draws := f.Draws()
	if len(draws) != 1 {
		t.Fatalf("got %d draws, expected 1", len(draws))
	}
	d := draws[0]
	if d.Mode != gl.TRIANGLES || d.Type != gl.UNSIGNED_INT || d.Count != 6 || d.Offset != 0 {
		t.Errorf("unexpected draw %+v", d)
	}
	exp := Quad().Indices
	for i := range exp {
		if d.Indices[i] != exp[i] {
			t.Fatalf("got indices %v, expected %v", d.Indices, exp)
		}
	}
	if d.Sampler != 0 {
		t.Errorf("sampler reads unit %d, expected 0", d.Sampler)
	}
	if !d.Texture.Equal(s.Texture().obj) {
		t.Errorf("drew texture %d, expected %d", d.Texture.V, s.Texture().obj.V)
	}
	if !d.Complete {
		t.Error("display texture is incomplete")
	}
	if got := f.ClearColorValue(); got != clear {
		t.Errorf("got clear color %v, expected %v", got, clear)
	}
	if got, exp := f.ViewportValue(), [4]int{0, 0, 160, 144}; got != exp {
		t.Errorf("got viewport %v, expected %v", got, exp)
	}
}

func TestScreenRedraw(t *testing.T) {
	s, f := newTestScreen(t, "OpenGL ES 3.0", Options{})
	for i := 0; i < 3; i++ {
		if err := s.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(f.Draws()); got != 3 {
		t.Errorf("got %d draws, expected 3", got)
	}
	// The bind cache leaves the program bound between frames.
	if got := countCalls(f, "glUseProgram"); got != 1 {
		t.Errorf("got %d glUseProgram calls, expected 1", got)
	}
	s.SetViewport(image.Pt(320, 288))
	if err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if got, exp := f.ViewportValue(), [4]int{0, 0, 320, 288}; got != exp {
		t.Errorf("got viewport %v, expected %v", got, exp)
	}
}

func TestScreenUpload(t *testing.T) {
	size := image.Pt(4, 2)
	s, f := newTestScreen(t, "OpenGL ES 3.0", Options{Size: size})
	pix := make([]byte, size.X*size.Y*4)
	for i := range pix {
		pix[i] = byte(i)
	}
	for i := 0; i < 2; i++ {
		if err := s.Upload(pix); err != nil {
			t.Fatal(err)
		}
		if got := f.Image(s.Texture().obj).Pix; !bytes.Equal(got, pix) {
			t.Fatalf("upload %d: got texels %v, expected %v", i, got, pix)
		}
	}
	if got, exp := f.MipLevels(s.Texture().obj), 3; got != exp {
		t.Errorf("got %d mip levels after upload, expected %d", got, exp)
	}
	// Row 0 of the pixels is row 0 of the texture.
	if got := f.Texel(s.Texture().obj, 0, 0); got.R != 0 || got.A != 3 {
		t.Errorf("got texel %v at the origin", got)
	}
	if err := s.Upload(pix[:4]); err == nil {
		t.Error("short upload accepted")
	}
	if err := s.Draw(); err != nil {
		t.Fatal(err)
	}
}

func TestScreenInitialPixels(t *testing.T) {
	size := image.Pt(2, 2)
	pix := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	s, f := newTestScreen(t, "OpenGL ES 3.0", Options{Size: size, Pixels: pix})
	if got := f.Texel(s.Texture().obj, 1, 1); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("got texel %v at (1, 1), expected white", got)
	}
}

func TestScreenNPOTOnWebGL1(t *testing.T) {
	s, f := newTestScreen(t, "WebGL 1.0", Options{})
	tex := s.Texture()
	if tex.Wrap != WrapClampToEdge {
		t.Errorf("got wrap %v, expected %v", tex.Wrap, WrapClampToEdge)
	}
	if got := f.TexParameter(tex.obj, gl.TEXTURE_WRAP_S); got != gl.CLAMP_TO_EDGE {
		t.Errorf("got TEXTURE_WRAP_S %#x, expected CLAMP_TO_EDGE", got)
	}
	if got := f.MipLevels(tex.obj); got != 1 {
		t.Errorf("got %d mip levels, expected 1", got)
	}
	if err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if d := f.Draws(); len(d) != 1 || !d[0].Complete {
		t.Errorf("texture not complete on WebGL 1: %+v", d)
	}
}

func TestScreenPOTOnWebGL1(t *testing.T) {
	s, f := newTestScreen(t, "WebGL 1.0", Options{Size: image.Pt(256, 256)})
	if s.Texture().Wrap != WrapRepeat {
		t.Errorf("got wrap %v, expected %v", s.Texture().Wrap, WrapRepeat)
	}
	if got := f.MipLevels(s.Texture().obj); got != 9 {
		t.Errorf("got %d mip levels, expected 9", got)
	}
}

func TestScreenDesktopCore(t *testing.T) {
	vert, frag := QuadSources(brokenVert, testFrag, testVert150, testFrag150)
	s, f := newTestScreen(t, "4.1 Core", Options{Vertex: vert, Fragment: frag})
	if got := countCalls(f, "glBindVertexArray"); got != 1 {
		t.Errorf("got %d glBindVertexArray calls, expected 1", got)
	}
	if err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if ver, gles := s.Context().Version(); gles || ver != [2]int{4, 1} {
		t.Errorf("got version %v (gles %v), expected 4.1 desktop", ver, gles)
	}
}

func TestScreenResourceFailure(t *testing.T) {
	for _, fn := range []string{"CreateBuffer", "CreateProgram", "CreateShader", "CreateTexture", "CreateVertexArray"} {
		f := gltest.New("4.1 Core")
		f.Fail = map[string]bool{fn: true}
		vert, frag := testSources()
		_, err := NewScreen(f, Options{Vertex: vert, Fragment: frag})
		if err == nil {
			t.Errorf("%s failure: NewScreen succeeded", fn)
		}
	}
}

func TestScreenOptionErrors(t *testing.T) {
	vert, frag := testSources()
	badFrag := frag
	badFrag.Textures = []shader.TextureBinding{{Name: SamplerName, Binding: 1}}
	badVert := vert
	badVert.Inputs = append([]shader.InputLocation{}, vert.Inputs...)
	badVert.Inputs = append(badVert.Inputs, shader.InputLocation{Name: "aColor", Type: shader.DataTypeFloat, Size: 4})
	wideVert := vert
	wideVert.Inputs = append([]shader.InputLocation{}, vert.Inputs...)
	wideVert.Inputs[0].Size = 4
	partVert := vert
	partVert.Inputs = vert.Inputs[:1]
	dupVert := vert
	dupVert.Inputs = []shader.InputLocation{vert.Inputs[0], vert.Inputs[0], vert.Inputs[1]}
	tests := []struct {
		name string
		opts Options
		exp  string
	}{
		{"sampler unit", Options{Vertex: vert, Fragment: badFrag}, "unit 1"},
		{"unknown input", Options{Vertex: badVert, Fragment: frag}, "aColor"},
		{"pixel count", Options{Vertex: vert, Fragment: frag, Pixels: make([]byte, 3)}, "bytes of pixels"},
		{"no inputs", Options{Vertex: shader.Sources{Name: "x", GLSL100ES: testVert}, Fragment: frag}, "no input"},
		{"position size", Options{Vertex: wideVert, Fragment: frag}, "has 4 components"},
		{"missing texcoord", Options{Vertex: partVert, Fragment: frag}, TexCoordAttrib},
		{"duplicate input", Options{Vertex: dupVert, Fragment: frag}, "declared twice"},
		{"compile error", Options{Vertex: shader.Sources{Name: "x", GLSL100ES: brokenVert, Inputs: vert.Inputs}, Fragment: frag}, "link failed"},
	}
	for _, test := range tests {
		_, err := NewScreen(gltest.New("OpenGL ES 3.0"), test.opts)
		if err == nil || !strings.Contains(err.Error(), test.exp) {
			t.Errorf("%s: got error %v, expected it to mention %q", test.name, err, test.exp)
		}
	}
}

func TestNewContextBadVersion(t *testing.T) {
	if _, err := NewContext(gltest.New("unknown")); err == nil {
		t.Error("unparseable version accepted")
	}
}

func TestNewContextWithoutCurrentContext(t *testing.T) {
	_, err := NewContext(gltest.New(""))
	if err == nil || !strings.Contains(err.Error(), "no current GL context") {
		t.Errorf("got error %v, expected a missing context error", err)
	}
}

func TestScreenOptionErrorsBeforeGL(t *testing.T) {
	vert, frag := testSources()
	badFrag := frag
	badFrag.Textures = []shader.TextureBinding{{Name: SamplerName, Binding: 1}}
	badVert := vert
	badVert.Inputs = vert.Inputs[1:]
	tests := []struct {
		name string
		opts Options
	}{
		{"sampler unit", Options{Vertex: vert, Fragment: badFrag}},
		{"missing position", Options{Vertex: badVert, Fragment: frag}},
	}
	for _, test := range tests {
		f := gltest.New("OpenGL ES 3.0")
		if _, err := NewScreen(f, test.opts); err == nil {
			t.Errorf("%s: options accepted", test.name)
		}
		if calls := f.Calls(); len(calls) != 0 {
			t.Errorf("%s: got GL calls %v, expected none", test.name, calls)
		}
	}
}

func TestScreenBindsGeometryLayout(t *testing.T) {
	vert, frag := testSources()
	// Input order in the metadata does not change the binding.
	vert.Inputs = []shader.InputLocation{vert.Inputs[1], vert.Inputs[0]}
	s, f := newTestScreen(t, "OpenGL ES 3.0", Options{Vertex: vert, Fragment: frag})
	attrs := s.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("got %d attributes, expected 2", len(attrs))
	}
	if a := attrs[0]; a.Name != PositionAttrib || a.Size != positionSize {
		t.Errorf("got %+v, expected %s of size %d", a, PositionAttrib, positionSize)
	}
	if a := attrs[1]; a.Name != TexCoordAttrib || a.Size != texCoordSize {
		t.Errorf("got %+v, expected %s of size %d", a, TexCoordAttrib, texCoordSize)
	}
	if err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if draws := f.Draws(); len(draws) != 1 {
		t.Errorf("got %d draws, expected 1", len(draws))
	}
}
