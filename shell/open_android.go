// SPDX-License-Identifier: Unlicense OR MIT

package shell

import (
	"errors"
	"image/color"

	"golang.org/x/mobile/gl"

	"gioui.org/bootstrap/host/android"
	"gioui.org/bootstrap/internal/config"
)

// openWindow returns the window of the activity run by
// android.RunActivity.
func openWindow(cfg config.Config) (backend, error) {
	act := android.Current()
	if act == nil {
		return nil, errors.New("shell: no running activity")
	}
	return newActivityWindow(act, cfg.BackgroundColor(), cfg.Android.PollTimeout, clearGL), nil
}

// clearGL clears the OpenGL ES surface of the activity.
func clearGL(ctx interface{}, c color.NRGBA) bool {
	glctx, ok := ctx.(gl.Context)
	if !ok {
		return false
	}
	glctx.ClearColor(float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff)
	glctx.Clear(gl.COLOR_BUFFER_BIT)
	return true
}
