// SPDX-License-Identifier: Unlicense OR MIT

package web

import (
	"syscall/js"

	"github.com/rs/zerolog"

	"gioui.org/bootstrap/host"
	"gioui.org/bootstrap/internal/logging"
)

// Export sets the JavaScript global ExportName to a function without
// arguments that starts entry. The returned js.Func must stay alive for as
// long as the export may be called.
func Export(entry func()) js.Func {
	return export(host.NewBridge(ExportName, entry, logging.Init(zerolog.DebugLevel)))
}

func export(b *host.Bridge) js.Func {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		// Blocking in a JavaScript callback deadlocks the program, and
		// entry blocks until the window closes.
		b.Go(nil)
		return nil
	})
	js.Global().Set(ExportName, f)
	return f
}
