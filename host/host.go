// SPDX-License-Identifier: Unlicense OR MIT

// Package host contains what the platform entry points share. The
// platform specific adapters live in the android, ios and web
// subpackages.
package host

import (
	"sync"

	"github.com/rs/zerolog"
)

// Bridge forwards a one-shot platform callback to the shared entry
// function. Gio supports a single window on mobile and WebAssembly, so
// the entry function runs at most once.
type Bridge struct {
	name  string
	entry func()
	log   zerolog.Logger

	once sync.Once
}

// NewBridge returns a Bridge for the platform callback name.
func NewBridge(name string, entry func(), log zerolog.Logger) *Bridge {
	return &Bridge{name: name, entry: entry, log: log}
}

// Go starts the entry function on a new goroutine the first time it is
// called and reports whether it did. Loop, if not nil, then runs on the
// calling goroutine; hosts whose window system must own the calling thread
// pass its main loop. Go returns when loop does.
func (b *Bridge) Go(loop func()) bool {
	if !b.claim() {
		return false
	}
	go b.entry()
	if loop != nil {
		loop()
	}
	return true
}

// claim reports whether this is the first invocation.
func (b *Bridge) claim() bool {
	first := false
	b.once.Do(func() { first = true })
	if !first {
		b.log.Warn().Str("callback", b.name).Msg("entry point invoked again, ignoring")
		return false
	}
	b.log.Debug().Str("callback", b.name).Msg("entering")
	return true
}
