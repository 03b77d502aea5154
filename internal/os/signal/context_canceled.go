// Package signal describes the interrupt signals that stop a search.
package signal

import (
	"context"
	"fmt"
	"os"
)

// ContextCanceledCause is the cause of a context canceled by a signal.
type ContextCanceledCause struct {
	Signal os.Signal
}

// NewContextCanceledCause returns a new `ContextCanceledCause` instance.
func NewContextCanceledCause(sig os.Signal) *ContextCanceledCause {
	return &ContextCanceledCause{Signal: sig}
}

// Error implements the `Error` method.
func (cause ContextCanceledCause) Error() string {
	return fmt.Sprintf("%s: interrupted by %s", context.Canceled, cause.Signal)
}

// Unwrap implements the `Unwrap` method.
func (ContextCanceledCause) Unwrap() error {
	return context.Canceled
}
