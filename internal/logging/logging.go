// SPDX-License-Identifier: Unlicense OR MIT

// Package logging configures zerolog to write severity-tagged text lines to
// the log facility of the platform: logcat on Android, NSLog on iOS, the
// browser console for WebAssembly and stderr or DebugView elsewhere.
package logging

import (
	"bytes"
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Tag identifies the program in platform logs that support tags.
const Tag = "bootstrap"

// sink receives fully rendered log lines without a trailing newline.
type sink interface {
	WriteLine(level zerolog.Level, line []byte) error
}

type sinkFlags struct {
	// stamped is set for sinks that add their own timestamps.
	stamped bool
	color   bool
}

var (
	mu   sync.Mutex
	base *zerolog.Logger
)

// Init installs the platform logger as the zerolog global logger at the
// given level and routes the standard library log package through it.
// Init may be called more than once; later calls only change the level.
func Init(level zerolog.Level) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		l := New(zerolog.TraceLevel)
		base = &l
		stdlog.SetFlags(0)
		stdlog.SetOutput(stdWriter{logger: func() zerolog.Logger { return log.Logger }})
	}
	log.Logger = base.Level(level)
	return log.Logger
}

// stdWriter writes each line of the standard library log package as an
// info message of the logger it is given, honouring that logger's level.
type stdWriter struct {
	logger func() zerolog.Logger
}

func (w stdWriter) Write(p []byte) (int, error) {
	l := w.logger()
	l.Info().Msg(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// New returns a logger writing to the platform sink.
func New(level zerolog.Level) zerolog.Logger {
	s, flags := newSink()
	return newLogger(s, flags, level)
}

func newLogger(s sink, flags sinkFlags, level zerolog.Level) zerolog.Logger {
	ctx := zerolog.New(newLevelWriter(s, flags)).Level(level).With()
	if !flags.stamped {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level. The empty string selects
// debug, the default verbosity in every build.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "", "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	case "disabled", "off", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.DebugLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// levelWriter renders each JSON event with a ConsoleWriter and hands the
// resulting line, together with its level, to a sink.
type levelWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	cw   zerolog.ConsoleWriter
	sink sink
}

func newLevelWriter(s sink, flags sinkFlags) *levelWriter {
	w := &levelWriter{sink: s}
	w.cw = zerolog.ConsoleWriter{
		Out:        &w.buf,
		NoColor:    !flags.color,
		TimeFormat: "15:04:05.000",
	}
	if flags.stamped {
		w.cw.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	return w
}

func (w *levelWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

func (w *levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf.Reset()
	if _, err := w.cw.Write(p); err != nil {
		return 0, err
	}
	line := bytes.TrimRight(w.buf.Bytes(), "\n")
	if err := w.sink.WriteLine(level, line); err != nil {
		return 0, err
	}
	return len(p), nil
}

type stderrSink struct{}

func newStderrSink() (sink, sinkFlags) {
	fd := os.Stderr.Fd()
	return stderrSink{}, sinkFlags{
		color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (stderrSink) WriteLine(_ zerolog.Level, line []byte) error {
	_, err := os.Stderr.Write(append(line, '\n'))
	return err
}
