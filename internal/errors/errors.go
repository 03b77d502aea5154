// Package errors wraps errors with stack traces, aggregates them and recovers panics into errors.
//
// Every error that crosses a package boundary in hashbrute is created through New or Errorf, so the
// stack can be printed at trace level by the entrypoint.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
)

// New wraps the given value, an error or a message, in an error that carries the stack trace.
// If the value already carries a stack trace it is returned unchanged. A nil value returns nil.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf creates a new error with the stack trace from a format specifier.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1)
}

// ErrorStack returns the stack traces of all errors in the tree, joined by a new line.
func ErrorStack(err error) string {
	var stacks []string

	for _, err := range UnwrapMultiErrors(err) {
		for ; err != nil; err = errors.Unwrap(err) {
			if err, ok := err.(interface{ ErrorStack() string }); ok {
				stacks = append(stacks, err.ErrorStack())
			}
		}
	}

	return strings.Join(stacks, "\n")
}

// ContainsStackTrace returns true if any error in the tree already carries a stack trace.
func ContainsStackTrace(err error) bool {
	for _, err := range UnwrapMultiErrors(err) {
		for ; err != nil; err = errors.Unwrap(err) {
			if _, ok := err.(interface{ ErrorStack() string }); ok {
				return true
			}
		}
	}

	return false
}

// IsContextCanceled returns true if the error was caused by a canceled context or an expired deadline.
func IsContextCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Recover recovers from a panic and passes its cause, with the stack trace, to onPanic.
// It must be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(goerrors.Wrap(err, 2)) //nolint:mnd
	}
}

// UnwrapMultiErrors flattens all nested multi-errors into a slice.
func UnwrapMultiErrors(err error) []error {
	errs := []error{err}

	for index := 0; index < len(errs); index++ {
		for err := errs[index]; err != nil; err = errors.Unwrap(err) {
			if multi, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs[:index], errs[index+1:]...)
				errs = append(errs, multi.Unwrap()...)
				index--

				break
			}
		}
	}

	return errs
}
