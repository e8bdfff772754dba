// SPDX-License-Identifier: Unlicense OR MIT

//go:build !((darwin || freebsd || linux || windows) && !android)
// +build !darwin,!freebsd,!linux,!windows android

package gpu

import (
	"fmt"
	"runtime"
)

// NativeFunctions is not available on this platform. On js/wasm,
// bind a WebGL context instead.
func NativeFunctions() (Functions, error) {
	return nil, fmt.Errorf("gpu: no native GL loader for %s", runtime.GOOS)
}
