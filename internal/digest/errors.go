package digest

import (
	"fmt"
	"strings"
)

// UnsupportedAlgorithmError is returned when no algorithm is registered under the requested name.
type UnsupportedAlgorithmError struct {
	Name      string
	Supported []string
}

func (err UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("%s is not supported, supported algorithms: %s", err.Name, strings.Join(err.Supported, " "))
}

// DuplicateAlgorithmError is returned when an algorithm name is registered twice.
type DuplicateAlgorithmError struct {
	Name string
}

func (err DuplicateAlgorithmError) Error() string {
	return fmt.Sprintf("algorithm %s is already registered", err.Name)
}

// InvalidAlgorithmError is returned when an algorithm misses its name, constructor or size.
type InvalidAlgorithmError struct {
	Name string
}

func (err InvalidAlgorithmError) Error() string {
	return fmt.Sprintf("algorithm %q must have a name, a constructor and a positive size", err.Name)
}
