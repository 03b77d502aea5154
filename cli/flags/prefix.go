// Package flags provides helpers shared by the flag definitions of every command.
package flags

import (
	"strings"
)

// HashbrutePrefix is prepended to the environment variables of every flag.
const HashbrutePrefix = "HASHBRUTE"

// Prefix is a list of name parts joined in front of a flag name.
type Prefix []string

// EnvVar returns the environment variable of the flag, e.g. HASHBRUTE_MIN_LEN for min-len.
func (prefix Prefix) EnvVar(name string) string {
	name = strings.Join(append(prefix, name), "_")

	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (prefix Prefix) EnvVars(names ...string) []string {
	var envVars = make([]string, len(names))

	for i := range names {
		envVars[i] = prefix.EnvVar(names[i])
	}

	return envVars
}

// EnvVarsWithHashbrutePrefix returns the environment variables of the given flag names.
func EnvVarsWithHashbrutePrefix(names ...string) []string {
	return Prefix{HashbrutePrefix}.EnvVars(names...)
}
