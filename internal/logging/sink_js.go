// SPDX-License-Identifier: Unlicense OR MIT

package logging

import (
	"syscall/js"

	"github.com/rs/zerolog"
)

type console struct {
	v js.Value
}

func newSink() (sink, sinkFlags) {
	return console{v: js.Global().Get("console")}, sinkFlags{stamped: true}
}

func (c console) WriteLine(level zerolog.Level, line []byte) error {
	method := "log"
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		method = "debug"
	case zerolog.InfoLevel:
		method = "info"
	case zerolog.WarnLevel:
		method = "warn"
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		method = "error"
	}
	c.v.Call(method, string(line))
	return nil
}
