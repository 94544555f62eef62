package errors

import (
	"fmt"
	"time"
)

// DebugMode controls whether assertions are enforced.
// When true, failed assertions are reported and panic.
// When false, Assertf is a no-op and invalid operations are silently skipped.
var DebugMode = true

// SetDebugMode enables or disables development assertions.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Assertf checks an invariant during development.
//
// When DebugMode is on and cond is false, the failure is reported to the
// global handler and the calling operation is aborted with a panic carrying
// an *AssertionError. When DebugMode is off the call is a no-op, matching
// production builds where invariant checks are compiled out.
func Assertf(cond bool, op, format string, args ...any) {
	if cond || !DebugMode {
		return
	}
	err := &AssertionError{
		Op:         op,
		Message:    fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	if h := getHandler(); h != nil {
		h.HandleAssertion(err)
	}
	panic(err)
}
