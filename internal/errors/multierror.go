package errors

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MultiError collects errors from concurrently running tasks.
type MultiError struct {
	inner *multierror.Error
}

// Append returns a new MultiError with the given errors added. Nil errors are skipped.
func (errs *MultiError) Append(appendErrs ...error) *MultiError {
	var inner *multierror.Error
	if errs != nil {
		inner = errs.inner
	}

	return &MultiError{inner: multierror.Append(inner, appendErrs...)}
}

// ErrorOrNil returns nil if no errors were collected.
func (errs *MultiError) ErrorOrNil() error {
	if errs == nil || errs.inner == nil || errs.inner.ErrorOrNil() == nil {
		return nil
	}

	return errs
}

// WrappedErrors returns the collected errors.
func (errs *MultiError) WrappedErrors() []error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	return errs.inner.WrappedErrors()
}

// Unwrap lets errors.Is and errors.As look into every collected error.
func (errs *MultiError) Unwrap() []error {
	return errs.WrappedErrors()
}

// Len returns the number of collected errors.
func (errs *MultiError) Len() int {
	return len(errs.WrappedErrors())
}

func (errs *MultiError) Error() string {
	wrapped := errs.WrappedErrors()

	lines := make([]string, 0, len(wrapped))
	for _, err := range wrapped {
		lines = append(lines, addIndent(err.Error()))
	}

	if len(wrapped) == 1 {
		return fmt.Sprintf("error occurred:\n\n%s\n", lines[0])
	}

	return fmt.Sprintf("%d errors occurred:\n\n%s\n", len(wrapped), strings.Join(lines, "\n\n"))
}

func addIndent(str string) string {
	rawLines := strings.Split(strings.ReplaceAll(str, "\r\n", "\n"), "\n")

	lines := make([]string, len(rawLines))
	for i, line := range rawLines {
		if i == 0 {
			lines[i] = "* " + line
			continue
		}

		lines[i] = "  " + line
	}

	return strings.Join(lines, "\n")
}
