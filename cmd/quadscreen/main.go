// SPDX-License-Identifier: Unlicense OR MIT

// Command quadscreen shows a pixel buffer on a full-viewport textured
// quad. Built for js/wasm it draws into a canvas WebGL context; on
// other platforms it runs the same GL sequence against a software GL
// and can print the calls.
package main

import (
	"embed"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/quadscreen/quadscreen/config"
	"github.com/quadscreen/quadscreen/gpu"
	"github.com/quadscreen/quadscreen/surface"
)

var (
	configPath  = flag.String("config", "", "YAML configuration file.")
	verbose     = flag.Bool("v", false, "log at debug level.")
	trace       = flag.Bool("trace", false, "print the GL calls of a dry run.")
	glVersion   = flag.String("glversion", "OpenGL ES 3.0", "GL_VERSION reported by the dry run GL.")
	printConfig = flag.Bool("printconfig", false, "print the effective configuration and exit.")
)

//go:embed shaders
var shaderFS embed.FS

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "quadscreen: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *printConfig {
		data, err := cfg.Encode()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	gpu.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	opts, err := screenOptions(cfg)
	if err != nil {
		return err
	}
	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}
	if dev.viewport != (image.Point{}) {
		opts.Viewport = dev.viewport
	}
	scr, err := gpu.NewScreen(dev.funcs, opts)
	if err != nil {
		return err
	}
	if err := scr.Draw(); err != nil {
		return err
	}
	return dev.finish()
}

// device is a GL implementation to draw with.
type device struct {
	funcs gpu.Functions
	// viewport is the drawable size, if known.
	viewport image.Point
	// finish runs after the first frame.
	finish func() error
}

func screenOptions(cfg config.Config) (gpu.Options, error) {
	srcs, err := loadShaders(cfg.Shaders)
	if err != nil {
		return gpu.Options{}, err
	}
	pix, err := initialPixels(cfg)
	if err != nil {
		return gpu.Options{}, err
	}
	vert, frag := gpu.QuadSources(srcs[0], srcs[1], srcs[2], srcs[3])
	return gpu.Options{
		Size:       image.Pt(cfg.Width, cfg.Height),
		ClearColor: cfg.Clear(),
		Vertex:     vert,
		Fragment:   frag,
		Pixels:     pix,
	}, nil
}

// loadShaders returns the GLSL 1.00 ES vertex and fragment sources
// followed by the GLSL 1.50 ones.
func loadShaders(s config.Shaders) ([4]string, error) {
	files := [4]struct{ override, builtin string }{
		{s.Vertex, "shaders/quad.vert"},
		{s.Fragment, "shaders/quad.frag"},
		{s.Vertex150, "shaders/quad150.vert"},
		{s.Fragment150, "shaders/quad150.frag"},
	}
	var srcs [4]string
	for i, f := range files {
		var data []byte
		var err error
		if f.override != "" {
			data, err = os.ReadFile(f.override)
		} else {
			data, err = shaderFS.ReadFile(f.builtin)
		}
		if err != nil {
			return srcs, fmt.Errorf("shader: %w", err)
		}
		srcs[i] = string(data)
	}
	return srcs, nil
}

func initialPixels(cfg config.Config) ([]byte, error) {
	var pix []byte
	if cfg.Image != "" {
		f, err := os.Open(cfg.Image)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, err := surface.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Image, err)
		}
		if pix, err = surface.FromImage(img, cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
	} else {
		var err error
		if pix, err = surface.Blank(cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
	}
	if cfg.Label != "" {
		if err := surface.Label(pix, cfg.Width, cfg.Height, cfg.Label, color.White); err != nil {
			return nil, err
		}
	}
	return pix, nil
}
