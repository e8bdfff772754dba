// SPDX-License-Identifier: Unlicense OR MIT

//go:build (darwin || freebsd || linux) && !android
// +build darwin freebsd linux
// +build !android

package gl

import "testing"

// TestNewFunctions only resolves entry points; calling them needs a
// current context.
func TestNewFunctions(t *testing.T) {
	f, err := NewFunctions(nil)
	if err != nil {
		t.Skipf("no system GL library: %v", err)
	}
	if f.glDrawElements == nil || f.glTexImage2D == nil || f.glGetString == nil {
		t.Error("entry points left unresolved")
	}
}
