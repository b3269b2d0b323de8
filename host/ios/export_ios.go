// SPDX-License-Identifier: Unlicense OR MIT

package ios

import "C"

import "gioui.org/app"

// bootstrap_main opens windows through Gio, which on iOS can only create
// them once its application delegate runs. app.Main starts
// UIApplicationMain with that delegate and does not return.
//
//export bootstrap_main
func bootstrap_main() {
	Main(app.Main)
}
