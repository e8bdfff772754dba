// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quadscreen/quadscreen/config"
	"github.com/quadscreen/quadscreen/gpu"
	"github.com/quadscreen/quadscreen/internal/gl"
	"github.com/quadscreen/quadscreen/internal/gltest"
)

func TestBuiltinShaders(t *testing.T) {
	for _, version := range []string{"WebGL 1.0", "WebGL 2.0", "OpenGL ES 2.0", "3.3"} {
		opts, err := screenOptions(config.Default())
		if err != nil {
			t.Fatal(err)
		}
		f := gltest.New(version)
		scr, err := gpu.NewScreen(f, opts)
		if err != nil {
			t.Fatalf("%s: %v", version, err)
		}
		if err := scr.Draw(); err != nil {
			t.Fatalf("%s: %v", version, err)
		}
		for _, a := range scr.Attributes() {
			if !a.Bound() {
				t.Errorf("%s: attribute %s not active", version, a.Name)
			}
		}
		if got := f.GetError(); got != gl.NO_ERROR {
			t.Errorf("%s: got GL error %#x", version, got)
		}
	}
}

func TestInitialPixels(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{G: 255, A: 255})
	path := filepath.Join(dir, "green.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Width, cfg.Height = 8, 8
	cfg.Image = path
	pix, err := initialPixels(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0 || pix[i+1] != 255 || pix[i+3] != 255 {
			t.Fatalf("pixel %d is %v, expected opaque green", i/4, pix[i:i+4])
		}
	}
	cfg.Image = filepath.Join(dir, "missing.png")
	if _, err := initialPixels(cfg); err == nil {
		t.Error("missing image accepted")
	}
}

func TestShaderOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.frag")
	const src = "precision mediump float;\nvoid main(void) { gl_FragColor = vec4(1.0); }\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	srcs, err := loadShaders(config.Shaders{Fragment: path})
	if err != nil {
		t.Fatal(err)
	}
	if srcs[1] != src {
		t.Errorf("got fragment source %q, expected the override", srcs[1])
	}
	if !strings.Contains(srcs[0], "aVertexPosition") {
		t.Error("built-in vertex shader not loaded")
	}
	if _, err := loadShaders(config.Shaders{Vertex: filepath.Join(dir, "missing.vert")}); err == nil {
		t.Error("missing shader file accepted")
	}
}

func TestOpenNativeDevice(t *testing.T) {
	*native = true
	defer func() { *native = false }()
	dev, err := openDevice(config.Default())
	if err != nil {
		t.Skipf("no system GL library: %v", err)
	}
	if _, ok := dev.funcs.(*gltest.Functions); ok || dev.funcs == nil {
		t.Errorf("got %T, expected the system GL", dev.funcs)
	}
}
