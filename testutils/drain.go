package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/flatavl/chops"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	for i, datum := range data {
		chops.TryRecv(ch).Match(
			func(el T) {
				assert.Equal(t, datum, el)
			},
			func() {
				t.Errorf("channel closed early, expecting %v", datum)
			},
			func() {
				t.Errorf("channel was empty, expecting i=%d %v", i, datum)
			},
		)
	}

	chops.TryRecv(ch).Match(
		func(el T) {
			t.Errorf("channel should be closed, but received: %v", el)
		},
		func() {},
		func() {
			t.Error("at the end of draining, channel was empty but unclosed")
		},
	)
}

// DrainBlocking receives from ch until it is closed, waiting at most
// timeout for each element, and returns everything received.
// Use it when the producer is still running.
func DrainBlocking[T any](t TestT, ch <-chan T, timeout time.Duration) []T {
	var out []T
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case el, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, el)
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(timeout)
		case <-timer.C:
			t.Errorf("no element or close within %v, received so far: %v", timeout, out)
			return out
		}
	}
}
