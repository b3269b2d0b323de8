// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gioui.org/bootstrap/host/android"
	"gioui.org/bootstrap/internal/config"
	"gioui.org/bootstrap/internal/logging"
	"gioui.org/bootstrap/shell"
)

func main() {
	parseFlags()
	cfg, err := config.Load(config.Path())
	if err != nil {
		logging.Init(zerolog.DebugLevel)
		log.Fatal().Err(err).Msg("load configuration")
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	android.RunActivity(shell.Entrypoint,
		android.WithPollTimeout(cfg.Android.PollTimeout),
		android.WithLogLevel(level),
	)
}
