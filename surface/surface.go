// SPDX-License-Identifier: Unlicense OR MIT

// Package surface builds the RGBA8 pixel buffers shown by a screen:
// row-major, 4 bytes per pixel, with row 0 at the top.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// Register the formats accepted by Decode.
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Blank returns a transparent black buffer of width×height pixels.
func Blank(width, height int) ([]byte, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return make([]byte, width*height*4), nil
}

// Decode decodes a PNG or BMP image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("surface: decode: %w", err)
	}
	switch format {
	case "png", "bmp":
		return img, nil
	default:
		return nil, fmt.Errorf("surface: unsupported image format %q", format)
	}
}

// FromImage scales img to width×height with nearest neighbour
// sampling, which keeps pixel art sharp, and returns its pixels.
func FromImage(img image.Image, width, height int) ([]byte, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rectangle{Max: image.Point{X: width, Y: height}})
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst.Pix, nil
}

// Label draws text onto pix in col, with a fixed-width face, centered
// horizontally and vertically. Text wider than the buffer is clipped.
func Label(pix []byte, width, height int, text string, col color.Color) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	if exp := width * height * 4; len(pix) != exp {
		return fmt.Errorf("surface: got %d bytes of pixels, expected %d for %dx%d", len(pix), exp, width, height)
	}
	dst := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rectangle{Max: image.Point{X: width, Y: height}},
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	adv := d.MeasureString(text)
	m := face.Metrics()
	x := (fixed.I(width) - adv) / 2
	y := (fixed.I(height)-m.Height)/2 + m.Ascent
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
	return nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface: invalid size %dx%d", width, height)
	}
	return nil
}
