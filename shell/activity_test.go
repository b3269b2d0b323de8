// SPDX-License-Identifier: Unlicense OR MIT

package shell

import (
	"image"
	"image/color"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/size"

	"gioui.org/bootstrap/host/android"
)

type testActivity struct {
	act       *android.Activity
	events    chan interface{}
	published int
	cleared   []color.NRGBA
}

func newTestActivityWindow(t *testing.T) (*activityWindow, *testActivity) {
	t.Helper()
	ta := &testActivity{events: make(chan interface{}, 64)}
	send := func(e interface{}) { ta.events <- e }
	ta.act = android.NewActivity(ta.events, send, nil, func() { ta.published++ })
	fill := func(ctx interface{}, c color.NRGBA) bool {
		ta.cleared = append(ta.cleared, c)
		return true
	}
	return newActivityWindow(ta.act, color.NRGBA{R: 0x80, A: 0xff}, 10*time.Millisecond, fill), ta
}

func nextEvents(t *testing.T, w *activityWindow, flow ControlFlow, n int) []Event {
	t.Helper()
	evs := make([]Event, n)
	for i := range evs {
		e, err := w.NextEvent(flow)
		if err != nil {
			t.Fatalf("NextEvent: %v", err)
		}
		evs[i] = e
	}
	return evs
}

func TestActivityWindowEvents(t *testing.T) {
	w, ta := newTestActivityWindow(t)
	ta.events <- lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageFocused, DrawContext: "gl"}
	// Start, Resume, InitWindow and GainedFocus.
	got := nextEvents(t, w, Poll, 5)
	want := []Event{MainEventsCleared{}, MainEventsCleared{}, MainEventsCleared{}, Focused{Focus: true}, MainEventsCleared{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("startup: got %v, want %v", got, want)
	}
	ta.events <- size.Event{WidthPx: 720, HeightPx: 1280}
	got = nextEvents(t, w, Poll, 2)
	want = []Event{Resized{Size: image.Pt(720, 1280)}, MainEventsCleared{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("resize: got %v, want %v", got, want)
	}
	w.RequestRedraw()
	got = nextEvents(t, w, Wait, 1)
	if want := []Event{RedrawRequested{}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("redraw: got %v, want %v", got, want)
	}
	ta.events <- lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}
	// LostFocus, Pause, SaveState, TerminateWindow, Stop and Destroy.
	got = nextEvents(t, w, Poll, 7)
	if e := got[len(got)-1]; e != (CloseRequested{}) {
		t.Fatalf("shutdown ended with %v, want CloseRequested", e)
	}
}

func TestActivityWindowTimeout(t *testing.T) {
	w, ta := newTestActivityWindow(t)
	if e, _ := w.NextEvent(Poll); e != (MainEventsCleared{}) {
		t.Fatalf("idle poll: got %v, want MainEventsCleared", e)
	}
	// Under Wait the timeout is not an event; the wait goes on.
	go func() {
		time.Sleep(50 * time.Millisecond)
		ta.act.Wake()
	}()
	start := time.Now()
	if e, _ := w.NextEvent(Wait); e != (MainEventsCleared{}) {
		t.Fatalf("wait: got %v, want MainEventsCleared", e)
	}
	if d := time.Since(start); d < 50*time.Millisecond {
		t.Fatalf("wait returned after %v, before the wake up", d)
	}
}

func TestActivityWindowDrainsInput(t *testing.T) {
	w, ta := newTestActivityWindow(t)
	ta.events <- key.Event{Rune: 'a', Direction: key.DirPress}
	if e, _ := w.NextEvent(Poll); e != (MainEventsCleared{}) {
		t.Fatalf("got %v, want MainEventsCleared", e)
	}
	ta.act.InputEvents(func(e android.InputEvent) android.InputStatus {
		t.Errorf("input %v left in the queue", e.Value)
		return android.Unhandled
	})
}

func TestActivityWindowRender(t *testing.T) {
	w, ta := newTestActivityWindow(t)
	w.Render()
	if ta.published != 0 || len(ta.cleared) != 0 {
		t.Fatal("Render drew while the window was hidden")
	}
	ta.events <- lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageVisible, DrawContext: "gl"}
	nextEvents(t, w, Poll, 3)
	w.Render()
	if ta.published != 1 {
		t.Fatalf("published %d frames, want 1", ta.published)
	}
	if want := []color.NRGBA{{R: 0x80, A: 0xff}}; !reflect.DeepEqual(ta.cleared, want) {
		t.Fatalf("cleared to %v, want %v", ta.cleared, want)
	}
}

func TestRunOnActivity(t *testing.T) {
	w, ta := newTestActivityWindow(t)
	s := New(w, WithRender(w.Render), WithLogger(zerolog.Nop()))
	ta.events <- lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageFocused, DrawContext: "gl"}
	go func() {
		time.Sleep(100 * time.Millisecond)
		ta.events <- lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}
	}()
	done := make(chan error, 1)
	go func() { done <- s.Run(w) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Destroy")
	}
	if s.State() != Exiting {
		t.Fatalf("state %v, want Exiting", s.State())
	}
	if ta.published == 0 {
		t.Error("no frame was published while the window was visible")
	}
}
