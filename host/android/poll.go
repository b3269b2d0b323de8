// SPDX-License-Identifier: Unlicense OR MIT

/*
Package android runs the program as an Android native activity.

The activity owns the main loop. Main polls it for lifecycle events with a
bounded wait and calls the entry function whenever a poll times out
without an event. Input events are logged and always reported as
unhandled, so the system applies its default behaviour to them.
*/
package android

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"gioui.org/bootstrap/internal/config"
	"gioui.org/bootstrap/internal/logging"
)

// DefaultPollTimeout bounds every poll of Main.
const DefaultPollTimeout = config.DefaultPollTimeout

// PollEvent is the outcome of a poll. Only the types in this package
// implement PollEvent.
type PollEvent interface {
	implementsPollEvent()
}

// Wake is returned when the poll was woken up before its timeout.
type Wake struct{}

// Timeout is returned when no event arrived within the poll timeout.
type Timeout struct{}

// Lifecycle carries an activity lifecycle event.
type Lifecycle struct {
	Event MainEvent
}

func (Wake) implementsPollEvent()      {}
func (Timeout) implementsPollEvent()   {}
func (Lifecycle) implementsPollEvent() {}

// MainEvent is an activity lifecycle event.
type MainEvent uint8

const (
	InitWindow MainEvent = iota
	TerminateWindow
	WindowResized
	RedrawNeeded
	InputAvailable
	GainedFocus
	LostFocus
	ConfigChanged
	LowMemory
	Start
	Resume
	SaveState
	Pause
	Stop
	Destroy
)

func (e MainEvent) String() string {
	switch e {
	case InitWindow:
		return "InitWindow"
	case TerminateWindow:
		return "TerminateWindow"
	case WindowResized:
		return "WindowResized"
	case RedrawNeeded:
		return "RedrawNeeded"
	case InputAvailable:
		return "InputAvailable"
	case GainedFocus:
		return "GainedFocus"
	case LostFocus:
		return "LostFocus"
	case ConfigChanged:
		return "ConfigChanged"
	case LowMemory:
		return "LowMemory"
	case Start:
		return "Start"
	case Resume:
		return "Resume"
	case SaveState:
		return "SaveState"
	case Pause:
		return "Pause"
	case Stop:
		return "Stop"
	case Destroy:
		return "Destroy"
	default:
		panic("invalid MainEvent")
	}
}

// InputEvent is a key, touch or mouse event.
type InputEvent struct {
	Value interface{}
}

func (e InputEvent) String() string {
	return fmt.Sprintf("%v", e.Value)
}

// InputStatus reports whether an input event was consumed.
type InputStatus uint8

const (
	Handled InputStatus = iota
	Unhandled
)

// App is the interface to the native activity.
type App interface {
	// PollEvents waits at most timeout for an event and passes the
	// outcome to fn.
	PollEvents(timeout time.Duration, fn func(PollEvent))
	// InputEvents passes every pending input event to fn.
	InputEvents(fn func(InputEvent) InputStatus)
}

type options struct {
	timeout time.Duration
	level   zerolog.Level
	logger  *zerolog.Logger
}

// Option configures Main.
type Option func(o *options)

// WithPollTimeout replaces DefaultPollTimeout.
func WithPollTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogLevel sets the verbosity of the platform logger. The default is
// debug.
func WithLogLevel(l zerolog.Level) Option {
	return func(o *options) {
		o.level = l
	}
}

// WithLogger logs to l instead of the platform logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &l
	}
}

// Main polls app until the activity is destroyed, calling entry for every
// poll that times out.
func Main(app App, entry func(), opts ...Option) {
	o := options{
		timeout: DefaultPollTimeout,
		level:   zerolog.DebugLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}
	var l zerolog.Logger
	if o.logger != nil {
		l = *o.logger
	} else {
		l = logging.Init(o.level)
	}
	for {
		destroyed := false
		app.PollEvents(o.timeout, func(e PollEvent) {
			switch e := e.(type) {
			case Wake:
				l.Info().Msg("Early wake up")
			case Timeout:
				entry()
			case Lifecycle:
				l.Info().Msgf("Main event: %v", e.Event)
				if e.Event == Destroy {
					destroyed = true
					return
				}
			default:
				panic(fmt.Errorf("android: unhandled poll event %T", e))
			}
			app.InputEvents(func(e InputEvent) InputStatus {
				l.Info().Msgf("Input Event: %v", e)
				return Unhandled
			})
		})
		if destroyed {
			return
		}
	}
}
