// SPDX-License-Identifier: Unlicense OR MIT

package ios

import "testing"

func TestMainStartsEntryOnce(t *testing.T) {
	done := make(chan struct{})
	calls := 0
	Register(func() {
		calls++
		close(done)
	})
	loops := 0
	loop := func() {
		loops++
		<-done
	}
	Main(loop)
	Main(loop)
	if calls != 1 {
		t.Fatalf("entry called %d times, want 1", calls)
	}
	if loops != 1 {
		t.Fatalf("main loop ran %d times, want 1", loops)
	}
}
