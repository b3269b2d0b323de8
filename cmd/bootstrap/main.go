// SPDX-License-Identifier: Unlicense OR MIT

// Command bootstrap opens a window and runs its event loop until the
// window is closed. The same program builds for desktop systems, Android
// (gomobile build), iOS (c-archive exporting bootstrap_main) and
// WebAssembly (exporting the JavaScript global wasm_entry).
//
// Settings are read from the file named by -config or $BOOTSTRAP_CONFIG,
// falling back to bootstrap/config.toml in the user configuration
// directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gioui.org/bootstrap/internal/config"
)

// extraArgs contains extra arguments to append to os.Args, separated by |.
// Useful on mobiles where the command line is not available. Set with the
// go linker flag -X, for example
//
//	-ldflags="-X 'main.extraArgs=-flow=wait|-log-level=info'"
var extraArgs string

var (
	configFile = flag.String("config", "", "configuration `file`")
	flow       = flag.String("flow", "", "control flow: poll or wait")
	logLevel   = flag.String("log-level", "", "log verbosity: trace, debug, info, warn, error or off")
)

func init() {
	if extraArgs != "" {
		os.Args = append(os.Args, strings.Split(extraArgs, "|")...)
	}
}

// parseFlags parses the command line and passes the settings on through
// the environment, where the shared entry function picks them up.
func parseFlags() {
	flag.Parse()
	overrides := []struct {
		env, val string
	}{
		{config.EnvConfig, *configFile},
		{config.EnvControlFlow, *flow},
		{config.EnvLogLevel, *logLevel},
	}
	for _, o := range overrides {
		if o.val == "" {
			continue
		}
		if err := os.Setenv(o.env, o.val); err != nil {
			fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
			os.Exit(2)
		}
	}
}
