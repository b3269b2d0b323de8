// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package shell

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"gioui.org/bootstrap/internal/config"
)

// openWindow opens a Gio window configured by cfg.
func openWindow(cfg config.Config) (backend, error) {
	w := new(app.Window)
	w.Option(
		app.Title(cfg.Title),
		app.Size(unit.Dp(cfg.Width), unit.Dp(cfg.Height)),
	)
	return newGioWindow(w, cfg.BackgroundColor()), nil
}

// gioWindow adapts a Gio window to the Window and Source interfaces.
type gioWindow struct {
	w *app.Window
	// next returns the next Gio event; w.Event outside tests.
	next       func() event.Event
	background color.NRGBA

	ops     op.Ops
	size    image.Point
	focused bool
	// frame is the FrameEvent waiting for its content.
	frame   *app.FrameEvent
	pending []Event
}

func newGioWindow(w *app.Window, background color.NRGBA) *gioWindow {
	return &gioWindow{
		w:          w,
		next:       w.Event,
		background: background,
	}
}

func (g *gioWindow) RequestRedraw() {
	g.w.Invalidate()
}

func (g *gioWindow) NextEvent(flow ControlFlow) (Event, error) {
	for len(g.pending) == 0 {
		// Gio expects every frame to be completed before the next event.
		g.Render()
		evs, err := g.translate(g.next(), flow)
		if err != nil {
			return nil, err
		}
		g.pending = append(g.pending, evs...)
	}
	e := g.pending[0]
	n := copy(g.pending, g.pending[1:])
	g.pending = g.pending[:n]
	return e, nil
}

// Render completes the outstanding frame, if any, by clearing the window to
// the background colour.
func (g *gioWindow) Render() {
	if g.frame == nil {
		return
	}
	e := *g.frame
	g.frame = nil
	gtx := app.NewContext(&g.ops, e)
	paint.Fill(gtx.Ops, g.background)
	e.Frame(gtx.Ops)
}

// translate converts a Gio event to the events of one pass.
func (g *gioWindow) translate(e event.Event, flow ControlFlow) ([]Event, error) {
	switch e := e.(type) {
	case app.DestroyEvent:
		if e.Err != nil {
			return nil, e.Err
		}
		return []Event{CloseRequested{}}, nil
	case app.ConfigEvent:
		var evs []Event
		if sz := e.Config.Size; sz != g.size {
			g.size = sz
			evs = append(evs, Resized{Size: sz})
		}
		if f := e.Config.Focused; f != g.focused {
			g.focused = f
			evs = append(evs, Focused{Focus: f})
		}
		return append(evs, MainEventsCleared{}), nil
	case app.FrameEvent:
		g.frame = &e
		if flow == Poll {
			return []Event{RedrawRequested{}, MainEventsCleared{}}, nil
		}
		return []Event{RedrawRequested{}}, nil
	default:
		return []Event{MainEventsCleared{}}, nil
	}
}
