// SPDX-License-Identifier: Unlicense OR MIT

package shell

import (
	"image"
	"image/color"
	"time"

	"github.com/rs/zerolog/log"

	"gioui.org/bootstrap/host/android"
)

// activityWindow adapts the window of a native Android activity to the
// Window and Source interfaces. Gio cannot open windows inside a native
// activity, so frames are drawn through the activity's own context.
type activityWindow struct {
	act        *android.Activity
	timeout    time.Duration
	background color.NRGBA
	// fill clears a drawing context with a colour and reports whether it
	// drew anything.
	fill       func(ctx interface{}, c color.NRGBA) bool

	focused bool
	pending []Event
}

func newActivityWindow(act *android.Activity, background color.NRGBA, timeout time.Duration, fill func(interface{}, color.NRGBA) bool) *activityWindow {
	return &activityWindow{
		act:        act,
		timeout:    timeout,
		background: background,
		fill:       fill,
	}
}

func (w *activityWindow) RequestRedraw() {
	w.act.RequestRedraw()
}

func (w *activityWindow) NextEvent(flow ControlFlow) (Event, error) {
	for len(w.pending) == 0 {
		w.act.PollEvents(w.timeout, func(e android.PollEvent) {
			w.pending = append(w.pending, w.translate(e, flow)...)
		})
	}
	e := w.pending[0]
	n := copy(w.pending, w.pending[1:])
	w.pending = w.pending[:n]
	return e, nil
}

// Render clears the window to the background colour and publishes the
// frame. It does nothing while the window is hidden.
func (w *activityWindow) Render() {
	ctx := w.act.DrawContext()
	if ctx == nil || w.fill == nil {
		return
	}
	if w.fill(ctx, w.background) {
		w.act.Publish()
	}
}

// translate converts a poll event to the events of one pass. Under Wait a
// poll timeout ends nothing and the next poll continues the wait.
func (w *activityWindow) translate(e android.PollEvent, flow ControlFlow) []Event {
	switch e := e.(type) {
	case android.Timeout:
		if flow == Wait {
			return nil
		}
	case android.Lifecycle:
		switch e.Event {
		case android.Destroy:
			return []Event{CloseRequested{}}
		case android.WindowResized:
			sz := w.act.Size()
			return []Event{Resized{Size: image.Pt(sz.WidthPx, sz.HeightPx)}, MainEventsCleared{}}
		case android.GainedFocus, android.LostFocus:
			f := e.Event == android.GainedFocus
			if f == w.focused {
				break
			}
			w.focused = f
			return []Event{Focused{Focus: f}, MainEventsCleared{}}
		case android.RedrawNeeded:
			if flow == Poll {
				return []Event{RedrawRequested{}, MainEventsCleared{}}
			}
			return []Event{RedrawRequested{}}
		case android.InputAvailable:
			w.act.InputEvents(func(in android.InputEvent) android.InputStatus {
				log.Debug().Interface("input", in.Value).Msg("input event")
				return android.Unhandled
			})
		}
	}
	return []Event{MainEventsCleared{}}
}
