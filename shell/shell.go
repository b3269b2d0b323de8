// SPDX-License-Identifier: Unlicense OR MIT

/*
Package shell owns the window and the event loop of the program.

A Shell reacts to the events of a single window. A close request moves it
from Running to Exiting; every other event leaves it Running. At the end of
each event pass the Shell asks the window to redraw, so a program using
the Poll control flow draws continuously.

Entrypoint is the function every platform entry point calls. It opens a Gio
window, or on Android the window of the native activity, and runs the loop
until the window closes:

	func main() {
		go func() {
			shell.Entrypoint()
			os.Exit(0)
		}()
		app.Main()
	}
*/
package shell

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Window is the part of a window a Shell controls.
type Window interface {
	// RequestRedraw schedules a RedrawRequested event.
	RequestRedraw()
}

// Source delivers window events. NextEvent blocks according to flow: under
// Poll it returns as soon as the current pass has ended, under Wait it may
// sleep until the operating system has an event.
type Source interface {
	NextEvent(flow ControlFlow) (Event, error)
}

// Shell is the event loop state machine.
type Shell struct {
	win    Window
	mode   ControlFlow
	flow   ControlFlow
	state  State
	render func()
	log    zerolog.Logger

	redraws int
}

// Option configures a Shell.
type Option func(s *Shell)

// WithControlFlow selects the control flow installed at the start of every
// iteration. The default is Poll.
func WithControlFlow(c ControlFlow) Option {
	return func(s *Shell) {
		s.mode = c
	}
}

// WithRender sets the function called for every RedrawRequested event.
func WithRender(render func()) Option {
	return func(s *Shell) {
		s.render = render
	}
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Shell) {
		s.log = l
	}
}

// New returns a Running Shell controlling w.
func New(w Window, options ...Option) *Shell {
	s := &Shell{
		win:  w,
		mode: Poll,
		log:  log.Logger,
	}
	for _, o := range options {
		o(s)
	}
	if s.mode == Exit {
		panic("shell: Exit is not a valid control flow mode")
	}
	s.flow = s.mode
	return s
}

// Handle processes a single event. Events handled after a close request
// are dropped.
func (s *Shell) Handle(e Event) {
	if s.state == Exiting {
		return
	}
	s.flow = s.mode
	switch e := e.(type) {
	case CloseRequested:
		s.log.Info().Msg("A close request was submitted. Shutting down ...")
		s.flow = Exit
		s.state = Exiting
	case MainEventsCleared:
		s.redraws++
		s.win.RequestRedraw()
	case RedrawRequested:
		if s.render != nil {
			s.render()
		}
	case Resized, Focused:
		s.log.Debug().Stringer("event", e.(fmt.Stringer)).Msg("ignored")
	default:
		panic(fmt.Errorf("shell: unhandled event %T", e))
	}
}

// Run handles events from src until a close request arrives.
func (s *Shell) Run(src Source) error {
	for s.state == Running {
		e, err := src.NextEvent(s.flow)
		if err != nil {
			return fmt.Errorf("shell: %w", err)
		}
		s.Handle(e)
	}
	return nil
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

// ControlFlow returns the control flow of the current iteration.
func (s *Shell) ControlFlow() ControlFlow {
	return s.flow
}

// Redraws returns the number of redraws the Shell has scheduled.
func (s *Shell) Redraws() int {
	return s.redraws
}
