// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"gioui.org/bootstrap/host/web"
	"gioui.org/bootstrap/shell"
)

func main() {
	parseFlags()
	web.Export(shell.Entrypoint)
	select {}
}
