package testing

import "github.com/go-aria/aria/pkg/errors"

// ErrorRecorder is an errors.ErrorHandler that captures everything
// reported, for asserting on error and panic wiring. Install with
// errors.SetHandler and restore the previous handler afterwards.
type ErrorRecorder struct {
	Errors     Recorder[*errors.StoreError]
	Panics     Recorder[*errors.PanicError]
	Assertions Recorder[*errors.AssertionError]
}

func (r *ErrorRecorder) HandleError(err *errors.StoreError) { r.Errors.Record(err) }

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) { r.Panics.Record(err) }

func (r *ErrorRecorder) HandleAssertion(err *errors.AssertionError) { r.Assertions.Record(err) }
