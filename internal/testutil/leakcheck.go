// Package testutil provides testing utilities for the radio dial.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks should be deferred at the start of tests that spawn goroutines.
func VerifyNoLeaks(t *testing.T, opts ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, opts...)
}

// IgnoreFyneGoroutines returns goleak options for goroutines already running
// when it is called, such as those of a Fyne test app created by an earlier
// test, and for the Fyne driver loops.
func IgnoreFyneGoroutines() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreCurrent(),
		goleak.IgnoreTopFunction("fyne.io/fyne/v2/internal/driver/glfw.(*gLDriver).runGL.func1"),
		goleak.IgnoreTopFunction("fyne.io/fyne/v2/internal/animation.(*Runner).runAnimations"),
	}
}

// VerifyNoFyneLeaks snapshots the running goroutines and returns the check
// to defer:
//
//	defer testutil.VerifyNoFyneLeaks(t)()
func VerifyNoFyneLeaks(t *testing.T) func() {
	t.Helper()
	opts := IgnoreFyneGoroutines()
	return func() {
		VerifyNoLeaks(t, opts...)
	}
}
