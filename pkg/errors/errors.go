// Package errors provides structured error handling and development-time
// assertions for the aria store library.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors wrapped by StoreError.
var (
	// ErrInvalidForm reports a submit attempt on a form with recorded
	// field errors.
	ErrInvalidForm = errors.New("form has validation errors")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindState indicates a state-shape violation, such as writing a key
	// that was not part of the store's initial state.
	KindState
	// KindRegistration indicates an item registration error.
	KindRegistration
	// KindConfig indicates an invalid store or keymap configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindRegistration:
		return "registration"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// StoreError represents a structured error raised by a store.
type StoreError struct {
	// Op is the operation that failed (e.g., "store.SetState").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Key is the state key involved, if applicable.
	Key string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "store.notify").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// AssertionError represents a failed development-time assertion.
type AssertionError struct {
	// Op is the operation where the assertion failed.
	Op string
	// Message describes the violated invariant.
	Message string
	// StackTrace contains the call stack at the time of the failure.
	StackTrace string
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed in %s: %s", e.Op, e.Message)
}

// ErrorHandler receives errors reported by the library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StoreError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleAssertion is called when a development assertion fails.
	HandleAssertion(err *AssertionError)
}
