// SPDX-License-Identifier: Unlicense OR MIT

//go:build ios

package logging

/*
#cgo CFLAGS: -Werror -fmodules -fobjc-arc -x objective-c
#cgo LDFLAGS: -framework Foundation

#import <Foundation/Foundation.h>

static void nslog(char *str) {
	NSLog(@"%@", @(str));
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
)

type nslog struct {
	mu  sync.Mutex
	buf []byte
}

func newSink() (sink, sinkFlags) {
	// The Console app already includes timestamps.
	return new(nslog), sinkFlags{stamped: true}
}

func (n *nslog) WriteLine(_ zerolog.Level, line []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.buf = append(append(n.buf[:0], line...), 0)
	C.nslog((*C.char)(unsafe.Pointer(&n.buf[0])))
	return nil
}
