package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStoreErrorString(t *testing.T) {
	err := &StoreError{
		Op:   "store.SetState",
		Kind: KindState,
		Err:  errors.New("boom"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestStoreErrorWithKey(t *testing.T) {
	err := &StoreError{
		Op:   "store.SetState",
		Kind: KindState,
		Key:  "activeID",
		Err:  errors.New("unknown key"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	// Should contain key info
	want := "key=activeID"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindState, "state"},
		{KindRegistration, "registration"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "store.notify",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in store.notify: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &StoreError{Op: "collection.RegisterItem", Kind: KindRegistration, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
}

func TestReport(t *testing.T) {
	var capturedErr *StoreError
	handler := &testHandler{
		onError: func(err *StoreError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&StoreError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  errors.New("bad config"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	// Should not panic
	Report(nil)
	ReportPanic(nil)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.panicking")
		panic("caught")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if captured.Op != "test.panicking" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.panicking")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace to be captured")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var callbackValue any
	func() {
		defer RecoverWithCallback("test.cb", func(r any) {
			callbackValue = r
		})
		panic("value")
	}()

	if callbackValue != "value" {
		t.Errorf("callback value = %v, want %q", callbackValue, "value")
	}
}

func TestAssertf_PassingCondition(t *testing.T) {
	// Should not panic
	Assertf(true, "test.op", "never fails")
}

func TestAssertf_FailingCondition_DebugMode(t *testing.T) {
	var captured *AssertionError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{
		onAssertion: func(err *AssertionError) {
			captured = err
		},
	})
	defer SetHandler(oldHandler)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Assertf to panic in debug mode")
		}
		aerr, ok := r.(*AssertionError)
		if !ok {
			t.Fatalf("expected *AssertionError, got %T", r)
		}
		if aerr.Op != "store.SetState" {
			t.Errorf("Op = %q, want %q", aerr.Op, "store.SetState")
		}
		if captured == nil {
			t.Error("expected assertion to be reported before panicking")
		}
	}()

	Assertf(false, "store.SetState", "unknown key %q", "bogus")
}

func TestAssertf_FailingCondition_ProductionMode(t *testing.T) {
	SetDebugMode(false)
	defer SetDebugMode(true)

	// Should be a no-op
	Assertf(false, "store.SetState", "unknown key")
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
}

func TestItoa(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-13, "-13"},
		{1000, "1000"},
	}
	for _, tt := range tests {
		if got := itoa(tt.in); got != tt.want {
			t.Errorf("itoa(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// testHandler captures reported errors for testing.
type testHandler struct {
	onError     func(*StoreError)
	onPanic     func(*PanicError)
	onAssertion func(*AssertionError)
}

func (h *testHandler) HandleError(err *StoreError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleAssertion(err *AssertionError) {
	if h.onAssertion != nil {
		h.onAssertion(err)
	}
}
