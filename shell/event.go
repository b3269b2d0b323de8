// SPDX-License-Identifier: Unlicense OR MIT

package shell

import (
	"fmt"
	"image"
)

// Event is an event delivered to a Shell. The set of events is closed:
// only the types in this package implement Event.
type Event interface {
	implementsEvent()
}

// CloseRequested is sent when the user or the operating system asked for
// the window to close.
type CloseRequested struct{}

// MainEventsCleared marks the end of an event processing pass.
type MainEventsCleared struct{}

// RedrawRequested is sent when the window needs new content.
type RedrawRequested struct{}

// Resized is sent when the window size changed.
type Resized struct {
	Size image.Point
}

// Focused is sent when the window gains or loses keyboard focus.
type Focused struct {
	Focus bool
}

func (CloseRequested) implementsEvent()    {}
func (MainEventsCleared) implementsEvent() {}
func (RedrawRequested) implementsEvent()   {}
func (Resized) implementsEvent()           {}
func (Focused) implementsEvent()           {}

func (CloseRequested) String() string    { return "CloseRequested" }
func (MainEventsCleared) String() string { return "MainEventsCleared" }
func (RedrawRequested) String() string   { return "RedrawRequested" }

func (r Resized) String() string {
	return fmt.Sprintf("Resized(%dx%d)", r.Size.X, r.Size.Y)
}

func (f Focused) String() string {
	return fmt.Sprintf("Focused(%t)", f.Focus)
}
