// SPDX-License-Identifier: Unlicense OR MIT

package logging

import (
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

var (
	kernel32           = windows.NewLazySystemDLL("kernel32")
	outputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

type debugView struct{}

func newSink() (sink, sinkFlags) {
	// Programs linked for the GUI subsystem have no stderr.
	if windows.Stderr == 0 {
		// DebugView already includes timestamps.
		return debugView{}, sinkFlags{stamped: true}
	}
	return newStderrSink()
}

func (debugView) WriteLine(_ zerolog.Level, line []byte) error {
	p, err := windows.UTF16PtrFromString(string(line) + "\n")
	if err != nil {
		return err
	}
	outputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
	return nil
}
