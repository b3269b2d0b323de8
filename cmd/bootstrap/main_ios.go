// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"gioui.org/app"

	"gioui.org/bootstrap/host/ios"
	"gioui.org/bootstrap/shell"
)

// The host calls bootstrap_main, possibly before main, so registration
// happens during initialization.
func init() {
	parseFlags()
	ios.Register(shell.Entrypoint)
}

// main is not run when the program is linked as a c-archive. Built as an
// executable it does what bootstrap_main does.
func main() {
	ios.Main(app.Main)
}
