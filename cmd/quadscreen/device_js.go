// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"syscall/js"

	"github.com/quadscreen/quadscreen/config"
	"github.com/quadscreen/quadscreen/internal/gl"
)

func openDevice(cfg config.Config) (device, error) {
	doc := js.Global().Get("document")
	cnv := doc.Call("querySelector", cfg.Canvas)
	if cnv.IsNull() {
		return device{}, fmt.Errorf("no canvas matches %q", cfg.Canvas)
	}
	// Match the drawing buffer to the displayed size.
	w, h := cnv.Get("clientWidth").Int(), cnv.Get("clientHeight").Int()
	if w <= 0 || h <= 0 {
		w, h = cfg.Width, cfg.Height
	}
	cnv.Set("width", w)
	cnv.Set("height", h)
	ctx := cnv.Call("getContext", "webgl2")
	if ctx.IsNull() {
		ctx = cnv.Call("getContext", "webgl")
	}
	if ctx.IsNull() {
		return device{}, errors.New("webgl is not supported")
	}
	f, err := gl.NewFunctions(gl.Context(ctx))
	if err != nil {
		return device{}, err
	}
	return device{
		funcs:    f,
		viewport: image.Pt(w, h),
		finish:   func() error { return nil },
	}, nil
}
