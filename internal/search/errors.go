package search

import (
	"fmt"

	"github.com/gruntwork-io/hashbrute/internal/errors"
)

// ConfigError is implemented by the errors that prevent a search from starting.
type ConfigError interface {
	error
	configError()
}

// IsConfigError returns true if err, or any error it wraps, is a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr ConfigError
	return errors.As(err, &cfgErr)
}

// AlgorithmError is returned when the configured algorithm cannot be resolved.
type AlgorithmError struct {
	Err error
}

func (err *AlgorithmError) Error() string {
	return err.Err.Error()
}

func (err *AlgorithmError) Unwrap() error {
	return err.Err
}

func (*AlgorithmError) configError() {}

// LengthRangeError is returned when the minimum length is bigger than the maximum one.
type LengthRangeError struct {
	MinLen uint
	MaxLen uint
}

func (err *LengthRangeError) Error() string {
	return fmt.Sprintf("min length of hashed text (%d) is bigger than max length of it (%d)", err.MinLen, err.MaxLen)
}

func (*LengthRangeError) configError() {}

// TargetSizeError is returned when the target length does not match the digest size.
type TargetSizeError struct {
	Algorithm string
	Expected  int
	Actual    int
}

func (err *TargetSizeError) Error() string {
	return fmt.Sprintf("invalid hash length for %s: expected %d bytes, got %d", err.Algorithm, err.Expected, err.Actual)
}

func (*TargetSizeError) configError() {}

// EmptyTargetError is returned when no target digest is given.
type EmptyTargetError struct{}

func (*EmptyTargetError) Error() string {
	return "hash is empty"
}

func (*EmptyTargetError) configError() {}

// MalformedTargetError is returned when the target is not valid hex.
type MalformedTargetError struct {
	Err   error
	Input string
}

func (err *MalformedTargetError) Error() string {
	return fmt.Sprintf("invalid hash string %q: %v", err.Input, err.Err)
}

func (err *MalformedTargetError) Unwrap() error {
	return err.Err
}

func (*MalformedTargetError) configError() {}

// CanceledError is returned when the search was stopped from the outside, by a deadline or an
// interrupt, before it either found a plaintext or exhausted the search space.
type CanceledError struct {
	Err       error
	Evaluated int64
}

func (err *CanceledError) Error() string {
	return fmt.Sprintf("search canceled after %d candidates: %v", err.Evaluated, err.Err)
}

func (err *CanceledError) Unwrap() error {
	return err.Err
}
