// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/quadscreen/quadscreen/config"
	"github.com/quadscreen/quadscreen/gpu"
	"github.com/quadscreen/quadscreen/internal/gl"
	"github.com/quadscreen/quadscreen/internal/gltest"
)

var native = flag.Bool("native", false, "draw through the system GL library into the GL context current on the main thread, instead of a dry run.")

func init() {
	// GL contexts are bound to the thread that made them current.
	runtime.LockOSThread()
}

// openDevice returns the system GL with -native, a software GL
// otherwise. Creating a window and a native context is left to the
// host.
func openDevice(cfg config.Config) (device, error) {
	if *native {
		f, err := gpu.NativeFunctions()
		if err != nil {
			return device{}, err
		}
		return device{funcs: f, finish: func() error { return nil }}, nil
	}
	f := gltest.New(*glVersion)
	return device{
		funcs: f,
		finish: func() error {
			if *trace {
				for _, c := range f.Calls() {
					fmt.Fprintln(os.Stdout, c)
				}
			}
			draws := f.Draws()
			if len(draws) == 0 {
				return fmt.Errorf("dry run: no draw (glGetError %#x)", f.GetError())
			}
			if d := draws[len(draws)-1]; !d.Complete {
				return fmt.Errorf("dry run: texture %d is incomplete", d.Texture.V)
			}
			if e := f.GetError(); e != gl.NO_ERROR {
				return fmt.Errorf("dry run: glGetError %#x", e)
			}
			return nil
		},
	}, nil
}
