// SPDX-License-Identifier: Unlicense OR MIT

// Package ios exports the C function bootstrap_main for iOS hosts. The
// host calls it once from its main function on the main thread. It starts
// the registered entry function and hands the main thread to the window
// system, which on iOS is Gio's application delegate.
package ios

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gioui.org/bootstrap/host"
	"gioui.org/bootstrap/internal/logging"
)

// Symbol is the name of the exported C function.
const Symbol = "bootstrap_main"

var (
	mu     sync.Mutex
	bridge *host.Bridge
)

// Register installs entry as the function run by bootstrap_main. Call it
// from an init function; the host may call bootstrap_main before the Go
// main function runs.
func Register(entry func()) {
	mu.Lock()
	defer mu.Unlock()
	bridge = host.NewBridge(Symbol, entry, logging.Init(zerolog.DebugLevel))
}

// Main starts the registered entry function on a new goroutine and runs
// loop on the calling thread. It is the body of bootstrap_main, where loop
// is gioui.org/app.Main. Later calls do nothing.
func Main(loop func()) {
	mu.Lock()
	b := bridge
	mu.Unlock()
	if b == nil {
		log.Fatal().Msg("ios: " + Symbol + " called before Register")
	}
	b.Go(loop)
}
