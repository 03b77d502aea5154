// Package exitcode maps the errors of a hashbrute run to process exit codes.
package exitcode

import (
	"fmt"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/search"
)

// Exit codes of the hashbrute binary.
const (
	ExitCodeSuccess      ExitCode = 0
	ExitCodeGeneralError ExitCode = 1
	ExitCodeConfigError  ExitCode = 2
	ExitCodeCanceled     ExitCode = 3
	ExitCodeNotFound     ExitCode = 4
)

// ExitCode is a number between 0 and 255, which is returned by any Unix command when it returns control to its parent process.
type ExitCode byte

// ExitCoder is an error carrying the exit code of the process. It satisfies the urfave/cli ExitCoder interface.
type ExitCoder interface {
	error
	ExitCode() int
	Unwrap() error
}

type exitError struct {
	err      error
	exitCode ExitCode
}

func (ee *exitError) Unwrap() error {
	return ee.err
}

func (ee *exitError) Error() string {
	if ee.err == nil {
		return ""
	}

	return ee.err.Error()
}

func (ee *exitError) ExitCode() int {
	return int(ee.exitCode)
}

// NewExitError creates a new ExitCoder from an error or any other message.
func NewExitError(message any, exitCode ExitCode) ExitCoder {
	var err error

	if message != nil {
		switch e := message.(type) {
		case error:
			err = e
		default:
			err = fmt.Errorf("%+v", message) //nolint:err113
		}
	}

	return &exitError{
		err:      err,
		exitCode: exitCode,
	}
}

// NotFoundError is returned by the search command when the search space was exhausted.
type NotFoundError struct {
	Evaluated int64
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("no plaintext found among %d candidates", err.Evaluated)
}

// Get returns the exit code for err. An explicit ExitCoder wins, otherwise the code is derived from
// the kind of the error.
func Get(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCoder ExitCoder
	if errors.As(err, &exitCoder) {
		return ExitCode(exitCoder.ExitCode()) //nolint:gosec
	}

	var (
		notFoundErr *NotFoundError
		canceledErr *search.CanceledError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return ExitCodeNotFound
	case search.IsConfigError(err):
		return ExitCodeConfigError
	case errors.As(err, &canceledErr), errors.IsContextCanceled(err):
		return ExitCodeCanceled
	}

	return ExitCodeGeneralError
}
