// SPDX-License-Identifier: Unlicense OR MIT

package logging

/*
#cgo LDFLAGS: -llog

#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"bufio"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// maxLine is the truncation limit from android/log.h.
const maxLine = 1023

type logcat struct {
	mu  sync.Mutex
	tag *C.char
	// buf holds the line passed to C, including the terminating '\0'.
	buf []byte
}

var redirectOnce sync.Once

func newSink() (sink, sinkFlags) {
	redirectOnce.Do(func() {
		redirect(os.Stdout.Fd())
		redirect(os.Stderr.Fd())
	})
	// Logcat already includes timestamps.
	return &logcat{tag: C.CString(Tag)}, sinkFlags{stamped: true}
}

func (l *logcat) WriteLine(level zerolog.Level, line []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(line) > maxLine {
		line = line[:maxLine]
	}
	l.buf = append(append(l.buf[:0], line...), 0)
	C.__android_log_write(priority(level), l.tag, (*C.char)(unsafe.Pointer(&l.buf[0])))
	return nil
}

func priority(level zerolog.Level) C.int {
	switch level {
	case zerolog.TraceLevel:
		return C.int(C.ANDROID_LOG_VERBOSE)
	case zerolog.DebugLevel:
		return C.int(C.ANDROID_LOG_DEBUG)
	case zerolog.WarnLevel:
		return C.int(C.ANDROID_LOG_WARN)
	case zerolog.ErrorLevel:
		return C.int(C.ANDROID_LOG_ERROR)
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return C.int(C.ANDROID_LOG_FATAL)
	default:
		return C.int(C.ANDROID_LOG_INFO)
	}
}

// redirect sends everything written to fd to logcat, so that panics and
// output from C libraries are not lost.
func redirect(fd uintptr) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	if err := unix.Dup3(int(w.Fd()), int(fd), unix.O_CLOEXEC); err != nil {
		panic(err)
	}
	go func() {
		tag := C.CString(Tag)
		defer C.free(unsafe.Pointer(tag))
		lineBuf := bufio.NewReaderSize(r, maxLine+1)
		buf := make([]byte, lineBuf.Size()+1)
		cbuf := (*C.char)(unsafe.Pointer(&buf[0]))
		for {
			line, _, err := lineBuf.ReadLine()
			if err != nil {
				break
			}
			copy(buf, line)
			buf[len(line)] = 0
			C.__android_log_write(C.ANDROID_LOG_INFO, tag, cbuf)
		}
		// The garbage collector doesn't know that w's fd was dup'ed.
		// Avoid finalizing w, and thereby avoid its finalizer closing its fd.
		runtime.KeepAlive(w)
	}()
}
