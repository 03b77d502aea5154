package search

import (
	"fmt"
	"time"
)

// NegativeDurationError is returned when a duration flag is below zero.
type NegativeDurationError struct {
	Flag  string
	Value time.Duration
}

func (err *NegativeDurationError) Error() string {
	return fmt.Sprintf("--%s must not be negative, got %s", err.Flag, err.Value)
}

// ArgsError is returned when the command is not given exactly one hash.
type ArgsError struct {
	Args []string
}

func (err *ArgsError) Error() string {
	if len(err.Args) == 0 {
		return "missing hash argument"
	}

	return fmt.Sprintf("expected exactly one hash argument, got %d: %v", len(err.Args), err.Args)
}
