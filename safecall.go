// Package safecall runs caller-supplied units of work under panic
// supervision and converts anything intercepted into a structured error,
// so that a panic raised inside the unit never unwinds past the caller's
// frame.
package safecall

import (
	"fmt"
	"runtime/debug"
)

// fallbackDescription substitutes for panic values that yield no usable text.
const fallbackDescription = "panic with no description"

// Error describes one intercepted panic. Description is never empty once
// populated; Category is the dynamic type of the panic value; Stack is the
// goroutine stack captured at the interception point.
type Error struct {
	Description string
	Category    string
	Stack       []byte

	cause error
}

func (e *Error) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("panic (%s): %s", e.Category, e.Description)
	}
	return "panic: " + e.Description
}

// Unwrap exposes the panic value when it was itself an error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Execute runs work and reports whether it completed without panicking.
//
// On panic, Execute returns false after populating errOut (when non-nil)
// with a description of the intercepted value; side effects work performed
// before the panic stand. On success errOut is left untouched. Execute is
// synchronous, retains neither argument after returning, and never lets a
// panic from work escape, so it is safe to call from frames that must not
// unwind.
func Execute(work func(), errOut *Error) (ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if errOut != nil {
				*errOut = *intercept(recovered)
			}
			ok = false
		}
	}()

	work()

	return true
}

// Do runs fn under the same supervision as Execute and returns the
// intercepted panic as a *Error, or nil on success.
func Do(fn func()) error {
	return DoE(func() error {
		fn()
		return nil
	})
}

// DoE runs fn, passing its own error through unchanged and converting a
// panic into a *Error.
func DoE(fn func() error) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = intercept(recovered)
		}
	}()

	return fn()
}

// Call runs a value-returning fn under supervision. On panic the zero
// value is returned alongside the intercepted *Error.
func Call[T any](fn func() T) (result T, err error) {
	err = Do(func() {
		result = fn()
	})
	return result, err
}

func intercept(recovered any) *Error {
	e := &Error{
		Description: describe(recovered),
		Category:    fmt.Sprintf("%T", recovered),
		Stack:       debug.Stack(),
	}
	if cause, isErr := recovered.(error); isErr {
		e.cause = cause
	}
	return e
}

// describe extracts text from an arbitrary panic value. Extraction must
// never fail: a value whose Error or String method panics in turn, or one
// that formats to nothing, degrades to the fallback description.
func describe(recovered any) (desc string) {
	defer func() {
		if recover() != nil {
			desc = fallbackDescription
		}
	}()

	switch v := recovered.(type) {
	case error:
		desc = v.Error()
	case string:
		desc = v
	case fmt.Stringer:
		desc = v.String()
	default:
		desc = fmt.Sprint(v)
	}

	if desc == "" || desc == "<nil>" {
		desc = fallbackDescription
	}
	return desc
}
