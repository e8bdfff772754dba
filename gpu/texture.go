// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// Texture is a 2D RGBA texture with 8 bits per channel. Its size and
// format are fixed at creation; the content can be replaced.
type Texture struct {
	obj    gl.Texture
	Width  int
	Height int
	Wrap   TextureWrap
	Filter TextureFilter

	mipmaps bool
}

// Display surfaces repeat and sample the nearest texel.
const (
	textureWrap   = WrapRepeat
	textureFilter = FilterNearest
)

// NewTexture creates a texture of width×height and uploads pixels as
// mip level 0, row-major RGBA. A nil pixels allocates a transparent
// black image. The texture is left bound on texture unit 0.
func (c *Context) NewTexture(pixels []byte, width, height int) (Texture, error) {
	if width <= 0 || height <= 0 {
		return Texture{}, fmt.Errorf("gpu: invalid texture size %dx%d", width, height)
	}
	if pixels == nil {
		pixels = make([]byte, width*height*4)
	}
	if exp := width * height * 4; len(pixels) != exp {
		return Texture{}, fmt.Errorf("gpu: got %d bytes of pixels, expected %d for %dx%d RGBA", len(pixels), exp, width, height)
	}
	glErr(c.funcs)
	obj := c.funcs.CreateTexture()
	if !obj.Valid() {
		return Texture{}, errors.New("gpu: glCreateTexture failed")
	}
	tex := Texture{obj: obj, Width: width, Height: height, Wrap: textureWrap, Filter: textureFilter}
	tex.mipmaps = true
	if c.es2() && !(isPow2(width) && isPow2(height)) {
		// OpenGL ES 2.0 textures with a non-power-of-two size are
		// incomplete unless they clamp and have no mipmaps.
		Logger().Warn("gpu: non-power-of-two texture on ES 2.0, clamping without mipmaps",
			"width", width, "height", height)
		tex.Wrap = WrapClampToEdge
		tex.mipmaps = false
	}
	c.state.bindTexture(c.funcs, 0, obj)
	c.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, toTexWrap(tex.Wrap))
	c.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, toTexWrap(tex.Wrap))
	c.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, toTexFilter(tex.Filter))
	c.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, toTexFilter(tex.Filter))
	c.state.bindTexture(c.funcs, 0, obj)
	c.funcs.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	if tex.mipmaps {
		c.funcs.GenerateMipmap(gl.TEXTURE_2D)
	}
	if err := glErr(c.funcs); err != nil {
		return Texture{}, fmt.Errorf("gpu: texture %dx%d: %w", width, height, err)
	}
	return tex, nil
}

// UploadTexture replaces the content of t with pixels, which must
// cover the whole texture.
func (c *Context) UploadTexture(t Texture, pixels []byte) error {
	if exp := t.Width * t.Height * 4; len(pixels) != exp {
		return fmt.Errorf("gpu: got %d bytes of pixels, expected %d for %dx%d RGBA", len(pixels), exp, t.Width, t.Height)
	}
	c.state.bindTexture(c.funcs, 0, t.obj)
	c.funcs.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.Width, t.Height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	if t.mipmaps {
		c.funcs.GenerateMipmap(gl.TEXTURE_2D)
	}
	return glErr(c.funcs)
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
