// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android && !ios && !js && !windows

package logging

func newSink() (sink, sinkFlags) {
	return newStderrSink()
}
