// SPDX-License-Identifier: Unlicense OR MIT

package android

import (
	"sync/atomic"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

// Activity implements App on top of the event channel of a
// golang.org/x/mobile application. Activity is not safe for concurrent
// use, except for Wake.
//
// The mobile event model has no way to return input to the system, so
// the status reported by InputEvents is not acted upon.
type Activity struct {
	events  <-chan interface{}
	send    func(interface{})
	filter  func(interface{}) interface{}
	publish func()

	orientation size.Orientation
	size        size.Event
	draw        interface{}
	destroyed   bool
	pending     []PollEvent
	input       []InputEvent
}

type wakeEvent struct{}

var current atomic.Pointer[Activity]

// NewActivity returns an Activity reading from events. The send function
// must queue an event on events without blocking, and filter is applied to
// every event before it is interpreted. publish shows the frame drawn
// through DrawContext and may be nil. For an app.App these are a.Events(),
// a.Send, a.Filter and a.Publish.
func NewActivity(events <-chan interface{}, send func(interface{}), filter func(interface{}) interface{}, publish func()) *Activity {
	if filter == nil {
		filter = func(e interface{}) interface{} { return e }
	}
	if publish == nil {
		publish = func() {}
	}
	return &Activity{
		events:  events,
		send:    send,
		filter:  filter,
		publish: publish,
	}
}

// Current returns the activity run by RunActivity, or nil outside of it.
func Current() *Activity {
	return current.Load()
}

// Size returns the last window size reported by the system.
func (a *Activity) Size() size.Event {
	return a.size
}

// DrawContext returns the drawing context of the visible window, or nil
// while the window is not visible. On Android it is a gl.Context.
func (a *Activity) DrawContext() interface{} {
	return a.draw
}

// Publish shows the frame drawn through DrawContext.
func (a *Activity) Publish() {
	a.publish()
}

// RequestRedraw schedules a RedrawNeeded event. It does nothing while the
// window is not visible.
func (a *Activity) RequestRedraw() {
	if a.draw == nil {
		return
	}
	a.send(paint.Event{})
}

// Wake makes a pending or future poll return Wake.
func (a *Activity) Wake() {
	a.send(wakeEvent{})
}

// PollEvents delivers the next poll event to fn. Once Destroy has been
// delivered, every later poll delivers Destroy again.
func (a *Activity) PollEvents(timeout time.Duration, fn func(PollEvent)) {
	if a.destroyed && len(a.pending) == 0 {
		fn(Lifecycle{Event: Destroy})
		return
	}
	if len(a.pending) == 0 {
		a.wait(timeout)
	}
	e := a.pending[0]
	n := copy(a.pending, a.pending[1:])
	a.pending = a.pending[:n]
	if e == (Lifecycle{Event: Destroy}) {
		a.destroyed = true
	}
	fn(e)
}

func (a *Activity) InputEvents(fn func(InputEvent) InputStatus) {
	input := a.input
	a.input = nil
	for _, e := range input {
		fn(e)
	}
}

// wait blocks until at least one poll event is pending.
func (a *Activity) wait(timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for len(a.pending) == 0 {
		select {
		case e, ok := <-a.events:
			if !ok {
				a.push(Destroy)
				return
			}
			a.translate(a.filter(e))
		case <-timer.C:
			a.pending = append(a.pending, Timeout{})
		}
	}
}

func (a *Activity) push(events ...MainEvent) {
	for _, e := range events {
		a.pending = append(a.pending, Lifecycle{Event: e})
	}
}

func (a *Activity) translate(e interface{}) {
	switch e := e.(type) {
	case wakeEvent:
		a.pending = append(a.pending, Wake{})
	case lifecycle.Event:
		switch e.Crosses(lifecycle.StageVisible) {
		case lifecycle.CrossOn:
			a.draw = e.DrawContext
		case lifecycle.CrossOff:
			a.draw = nil
		}
		a.push(lifecycleEvents(e)...)
	case size.Event:
		a.size = e
		a.push(WindowResized)
		if e.Orientation != a.orientation {
			a.orientation = e.Orientation
			a.push(ConfigChanged)
		}
	case paint.Event:
		if !e.External {
			a.push(RedrawNeeded)
		}
	case key.Event, mouse.Event, touch.Event:
		a.queueInput(e)
	}
}

func (a *Activity) queueInput(e interface{}) {
	a.input = append(a.input, InputEvent{Value: e})
	if len(a.input) == 1 {
		a.push(InputAvailable)
	}
}

// lifecycleEvents returns the activity events for a stage transition, in
// the order Android delivers them.
func lifecycleEvents(e lifecycle.Event) []MainEvent {
	var evs []MainEvent
	if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOn {
		evs = append(evs, Start)
	}
	if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOn {
		evs = append(evs, Resume, InitWindow)
	}
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOn {
		evs = append(evs, GainedFocus)
	}
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
		evs = append(evs, LostFocus)
	}
	if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOff {
		evs = append(evs, Pause, SaveState, TerminateWindow)
	}
	if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff {
		evs = append(evs, Stop, Destroy)
	}
	return evs
}
