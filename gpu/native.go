// SPDX-License-Identifier: Unlicense OR MIT

//go:build (darwin || freebsd || linux || windows) && !android
// +build darwin freebsd linux windows
// +build !android

package gpu

import (
	"fmt"

	"github.com/quadscreen/quadscreen/internal/gl"
)

// NativeFunctions loads the system OpenGL (ES) library. The host
// creates the window and GL context; the context must be current on
// the calling thread when the result is passed to NewScreen.
func NativeFunctions() (Functions, error) {
	f, err := gl.NewFunctions(nil)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	return f, nil
}
