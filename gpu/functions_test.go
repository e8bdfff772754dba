// SPDX-License-Identifier: Unlicense OR MIT

//go:build (darwin || freebsd || linux || windows) && !android
// +build darwin freebsd linux windows
// +build !android

package gpu

import "github.com/quadscreen/quadscreen/internal/gl"

var _ Functions = (*gl.Functions)(nil)
