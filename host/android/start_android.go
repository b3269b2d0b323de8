// SPDX-License-Identifier: Unlicense OR MIT

package android

import (
	"runtime"

	"golang.org/x/mobile/app"
)

// RunActivity is the native activity entry point. It hands the activity to
// Main and returns when the activity is destroyed. While Main runs, the
// activity is available from Current. RunActivity must be called from the
// program's main function.
func RunActivity(entry func(), opts ...Option) {
	app.Main(func(a app.App) {
		runtime.LockOSThread()
		act := NewActivity(a.Events(), a.Send, a.Filter, func() { a.Publish() })
		current.Store(act)
		defer current.Store(nil)
		Main(act, entry, opts...)
	})
}
