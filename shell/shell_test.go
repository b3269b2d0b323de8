// SPDX-License-Identifier: Unlicense OR MIT

package shell

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"
	"testing/quick"

	"github.com/rs/zerolog"
)

type fakeWindow struct {
	redraws int
}

func (w *fakeWindow) RequestRedraw() {
	w.redraws++
}

// sliceSource replays a fixed list of events.
type sliceSource struct {
	events []Event
	flows  []ControlFlow
	err    error
}

func (s *sliceSource) NextEvent(flow ControlFlow) (Event, error) {
	s.flows = append(s.flows, flow)
	if len(s.events) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		panic("sliceSource: out of events")
	}
	e := s.events[0]
	s.events = s.events[1:]
	return e, nil
}

type bogusEvent struct{}

func (bogusEvent) implementsEvent() {}

func newTestShell(w Window, options ...Option) (*Shell, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	options = append([]Option{WithLogger(zerolog.New(buf))}, options...)
	return New(w, options...), buf
}

func TestCloseAfterRedraws(t *testing.T) {
	w := new(fakeWindow)
	s, logs := newTestShell(w)
	for _, e := range []Event{MainEventsCleared{}, RedrawRequested{}, MainEventsCleared{}, CloseRequested{}} {
		s.Handle(e)
	}
	if s.State() != Exiting {
		t.Fatalf("state %v, want Exiting", s.State())
	}
	if s.ControlFlow() != Exit {
		t.Errorf("control flow %v, want exit", s.ControlFlow())
	}
	if w.redraws != 2 || s.Redraws() != 2 {
		t.Errorf("got %d window redraws and %d counted, want 2", w.redraws, s.Redraws())
	}
	if !strings.Contains(logs.String(), "A close request was submitted. Shutting down ...") {
		t.Errorf("missing close log line in %q", logs.String())
	}
}

func TestNoRedrawAfterClose(t *testing.T) {
	w := new(fakeWindow)
	rendered := 0
	s, _ := newTestShell(w, WithRender(func() { rendered++ }))
	s.Handle(CloseRequested{})
	s.Handle(MainEventsCleared{})
	s.Handle(RedrawRequested{})
	s.Handle(CloseRequested{})
	if w.redraws != 0 || rendered != 0 {
		t.Fatalf("got %d redraws and %d renders after close", w.redraws, rendered)
	}
	if s.State() != Exiting || s.ControlFlow() != Exit {
		t.Fatalf("got %v/%v after close", s.State(), s.ControlFlow())
	}
}

func TestNonCloseEventsKeepRunning(t *testing.T) {
	kinds := []Event{
		MainEventsCleared{},
		RedrawRequested{},
		Resized{Size: image.Pt(640, 480)},
		Focused{Focus: true},
		Focused{},
	}
	for _, mode := range []ControlFlow{Poll, Wait} {
		f := func(seq []uint8) bool {
			w := new(fakeWindow)
			s, _ := newTestShell(w, WithControlFlow(mode))
			cleared := 0
			for _, k := range seq {
				e := kinds[int(k)%len(kinds)]
				if _, ok := e.(MainEventsCleared); ok {
					cleared++
				}
				s.Handle(e)
			}
			return s.State() == Running && s.ControlFlow() == mode && w.redraws == cleared
		}
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("mode %v: %v", mode, err)
		}
	}
}

func TestRenderOnRedraw(t *testing.T) {
	rendered := 0
	s, _ := newTestShell(new(fakeWindow), WithRender(func() { rendered++ }))
	s.Handle(RedrawRequested{})
	s.Handle(MainEventsCleared{})
	s.Handle(RedrawRequested{})
	if rendered != 2 {
		t.Fatalf("rendered %d times, want 2", rendered)
	}
}

func TestRun(t *testing.T) {
	w := new(fakeWindow)
	s, _ := newTestShell(w, WithControlFlow(Wait))
	src := &sliceSource{events: []Event{
		Resized{Size: image.Pt(800, 600)},
		MainEventsCleared{},
		RedrawRequested{},
		CloseRequested{},
		// Never delivered.
		MainEventsCleared{},
	}}
	if err := s.Run(src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(src.events) != 1 {
		t.Errorf("Run consumed events after the close request")
	}
	if w.redraws != 1 {
		t.Errorf("got %d redraws, want 1", w.redraws)
	}
	for i, f := range src.flows {
		if f != Wait {
			t.Errorf("event %d requested with flow %v", i, f)
		}
	}
}

func TestRunSourceError(t *testing.T) {
	errLost := errors.New("device lost")
	s, _ := newTestShell(new(fakeWindow))
	src := &sliceSource{events: []Event{MainEventsCleared{}}, err: errLost}
	err := s.Run(src)
	if !errors.Is(err, errLost) {
		t.Fatalf("Run returned %v, want %v", err, errLost)
	}
	if s.State() != Running {
		t.Errorf("state %v after source error", s.State())
	}
}

func TestUnknownEventPanics(t *testing.T) {
	s, _ := newTestShell(new(fakeWindow))
	defer func() {
		if recover() == nil {
			t.Fatal("unknown event did not panic")
		}
	}()
	s.Handle(bogusEvent{})
}

func TestExitModeRejected(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New accepted Exit as mode")
		}
	}()
	New(new(fakeWindow), WithControlFlow(Exit))
}

func TestParseControlFlow(t *testing.T) {
	tests := []struct {
		in   string
		want ControlFlow
		ok   bool
	}{
		{"poll", Poll, true},
		{" Wait ", Wait, true},
		{"exit", Poll, false},
		{"", Poll, false},
	}
	for _, tt := range tests {
		got, err := ParseControlFlow(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseControlFlow(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseControlFlow(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
