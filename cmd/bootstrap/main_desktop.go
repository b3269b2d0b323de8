// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android && !ios && !js

package main

import (
	"os"

	"gioui.org/app"

	"gioui.org/bootstrap/shell"
)

func main() {
	parseFlags()
	go func() {
		shell.Entrypoint()
		os.Exit(0)
	}()
	app.Main()
}
