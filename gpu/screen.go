// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"image"

	"gioui.org/shader"
)

// DefaultSize is the display surface size used when Options.Size is
// empty.
var DefaultSize = image.Point{X: 160, Y: 144}

// Options configure a Screen.
type Options struct {
	// Size of the display texture. Defaults to DefaultSize.
	Size image.Point
	// Viewport in pixels. Defaults to Size.
	Viewport image.Point
	// ClearColor is the RGBA color cleared to before each draw.
	ClearColor [4]float32
	// Vertex and Fragment are the shader pair, see QuadSources.
	Vertex, Fragment shader.Sources
	// Pixels is the initial RGBA content, Size.X*Size.Y*4 bytes.
	// Nil means transparent black.
	Pixels []byte
}

// Screen draws a texture across the whole viewport.
type Screen struct {
	ctx      *Context
	geom     Geometry
	prog     Program
	tex      Texture
	position Buffer
	texCoord Buffer
	index    Buffer
	attribs  []AttribBinding
	clear    [4]float32
	viewport image.Point
}

// NewScreen sets up the buffers, program, attributes and texture of a
// Screen. The GL context behind f must be current.
func NewScreen(f Functions, opts Options) (*Screen, error) {
	if opts.Size == (image.Point{}) {
		opts.Size = DefaultSize
	}
	if opts.Viewport == (image.Point{}) {
		opts.Viewport = opts.Size
	}
	if err := checkShaderContract(opts.Vertex, opts.Fragment); err != nil {
		return nil, err
	}
	ctx, err := NewContext(f)
	if err != nil {
		return nil, err
	}
	s := &Screen{
		ctx:      ctx,
		geom:     Quad(),
		clear:    opts.ClearColor,
		viewport: opts.Viewport,
	}
	if err := s.geom.Validate(); err != nil {
		return nil, err
	}
	if err := s.createBuffers(); err != nil {
		return nil, err
	}
	s.prog, err = ctx.NewProgram(opts.Vertex, opts.Fragment)
	if err != nil {
		return nil, err
	}
	if err := s.bindAttributes(); err != nil {
		return nil, err
	}
	s.tex, err = ctx.NewTexture(opts.Pixels, opts.Size.X, opts.Size.Y)
	if err != nil {
		return nil, err
	}
	Logger().Info("gpu: screen ready", "size", opts.Size, "program", s.prog.name)
	return s, nil
}

func (s *Screen) createBuffers() error {
	var err error
	if s.position, err = NewBufferOf(s.ctx, BufferTargetVertices, s.geom.Positions); err != nil {
		return err
	}
	if s.texCoord, err = NewBufferOf(s.ctx, BufferTargetVertices, s.geom.TexCoords); err != nil {
		return err
	}
	if s.index, err = NewBufferOf(s.ctx, BufferTargetIndices, s.geom.Indices); err != nil {
		return err
	}
	return nil
}

// checkShaderContract verifies that the shader metadata matches the
// quad geometry: one float input per vertex array with the same
// component count, and the sampler on texture unit 0.
func checkShaderContract(vert, frag shader.Sources) error {
	sizes := map[string]int{
		PositionAttrib: positionSize,
		TexCoordAttrib: texCoordSize,
	}
	seen := make(map[string]bool)
	for _, inp := range vert.Inputs {
		size, ok := sizes[inp.Name]
		if !ok {
			return fmt.Errorf("gpu: no vertex data for input %q", inp.Name)
		}
		if seen[inp.Name] {
			return fmt.Errorf("gpu: input %q declared twice", inp.Name)
		}
		seen[inp.Name] = true
		if inp.Type != shader.DataTypeFloat {
			return fmt.Errorf("gpu: input %q: unsupported data type %d", inp.Name, inp.Type)
		}
		if inp.Size != size {
			return fmt.Errorf("gpu: input %q has %d components, the geometry provides %d", inp.Name, inp.Size, size)
		}
	}
	for _, name := range []string{PositionAttrib, TexCoordAttrib} {
		if !seen[name] {
			return fmt.Errorf("gpu: vertex shader declares no input %q", name)
		}
	}
	for _, t := range frag.Textures {
		if t.Name == SamplerName && t.Binding != 0 {
			return fmt.Errorf("gpu: sampler %q bound to unit %d, the display texture is on unit 0", t.Name, t.Binding)
		}
	}
	return nil
}

// bindAttributes feeds the position and texture coordinate inputs
// from the geometry buffers.
func (s *Screen) bindAttributes() error {
	layout := [...]struct {
		name string
		buf  Buffer
		size int
	}{
		{PositionAttrib, s.position, positionSize},
		{TexCoordAttrib, s.texCoord, texCoordSize},
	}
	for _, l := range layout {
		b, err := s.ctx.BindAttribute(s.prog, l.buf, l.name, l.size)
		if err != nil {
			return err
		}
		s.attribs = append(s.attribs, b)
	}
	return nil
}

// Draw clears the viewport and draws the textured quad.
func (s *Screen) Draw() error {
	s.ctx.Viewport(0, 0, s.viewport.X, s.viewport.Y)
	s.ctx.Clear(s.clear[0], s.clear[1], s.clear[2], s.clear[3])
	if err := s.ctx.bindIndexBuffer(s.index); err != nil {
		return err
	}
	return s.ctx.Draw(s.prog, 0, len(s.geom.Indices))
}

// Upload replaces the displayed pixels. The next Draw shows them.
func (s *Screen) Upload(pixels []byte) error {
	return s.ctx.UploadTexture(s.tex, pixels)
}

// SetViewport sets the size of the drawable surface, for example after
// the host resized it.
func (s *Screen) SetViewport(size image.Point) {
	s.viewport = size
}

// Context returns the context the screen issues its calls through.
func (s *Screen) Context() *Context {
	return s.ctx
}

// Program returns the linked screen program.
func (s *Screen) Program() Program {
	return s.prog
}

// Texture returns the display texture.
func (s *Screen) Texture() Texture {
	return s.tex
}

// Attributes returns the position and texture coordinate bindings.
func (s *Screen) Attributes() []AttribBinding {
	return s.attribs
}
