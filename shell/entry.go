// SPDX-License-Identifier: Unlicense OR MIT

package shell

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gioui.org/bootstrap/internal/config"
	"gioui.org/bootstrap/internal/logging"
)

// backend is a platform window together with its event source.
type backend interface {
	Window
	Source
	// Render draws the frame of the last RedrawRequested event.
	Render()
}

// Entrypoint is the shared entry function of every platform. It loads the
// configuration, opens the window and returns once the window has been
// closed. Any failure terminates the process.
func Entrypoint() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		logging.Init(zerolog.DebugLevel)
		log.Fatal().Err(err).Msg("load configuration")
	}
	// Validated by config.Load.
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Init(level)
	log.Info().Msg("ENTRYPOINT")
	if err := Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("event loop failed")
	}
}

// Run opens a window configured by cfg and runs the event loop until the
// window is closed. On Android the window is the one of the running
// activity; elsewhere it is a new Gio window.
func Run(cfg config.Config) error {
	flow, err := ParseControlFlow(cfg.ControlFlow)
	if err != nil {
		return err
	}
	win, err := openWindow(cfg)
	if err != nil {
		return err
	}
	log.Debug().
		Str("title", cfg.Title).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Stringer("flow", flow).
		Msg("window created")
	return newShell(win, flow).Run(win)
}

func newShell(win backend, flow ControlFlow) *Shell {
	return New(win,
		WithControlFlow(flow),
		WithRender(win.Render),
	)
}
