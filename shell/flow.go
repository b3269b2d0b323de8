// SPDX-License-Identifier: Unlicense OR MIT

package shell

import (
	"fmt"
	"strings"
)

// ControlFlow selects how the event loop waits for the next event.
type ControlFlow uint8

const (
	// Poll re-enters the loop immediately, whether or not events are
	// pending. Suited to programs that redraw continuously.
	Poll ControlFlow = iota
	// Wait sleeps until the operating system delivers an event.
	Wait
	// Exit terminates the loop after the current event.
	Exit
)

// State is the state of a Shell.
type State uint8

const (
	Running State = iota
	Exiting
)

// ParseControlFlow parses "poll" or "wait". Exit is not a valid starting mode.
func ParseControlFlow(s string) (ControlFlow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "poll":
		return Poll, nil
	case "wait":
		return Wait, nil
	default:
		return Poll, fmt.Errorf("shell: unknown control flow %q", s)
	}
}

func (c ControlFlow) String() string {
	switch c {
	case Poll:
		return "poll"
	case Wait:
		return "wait"
	case Exit:
		return "exit"
	default:
		panic("invalid ControlFlow")
	}
}

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Exiting:
		return "Exiting"
	default:
		panic("invalid State")
	}
}
