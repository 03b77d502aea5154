package flags_test

import (
	"testing"

	"github.com/gruntwork-io/hashbrute/cli/flags"
	"github.com/stretchr/testify/assert"
)

func TestPrefixEnvVars(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		prefix   flags.Prefix
		names    []string
		expected []string
	}{
		{nil, []string{"algo"}, []string{"ALGO"}},
		{flags.Prefix{flags.HashbrutePrefix}, []string{"min-len", "max-len"}, []string{"HASHBRUTE_MIN_LEN", "HASHBRUTE_MAX_LEN"}},
		{flags.Prefix{flags.HashbrutePrefix, "telemetry"}, []string{"trace-exporter"}, []string{"HASHBRUTE_TELEMETRY_TRACE_EXPORTER"}},
	}

	for _, tc := range testCases {
		t.Run(tc.expected[0], func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.prefix.EnvVars(tc.names...))
		})
	}

	assert.Equal(t, []string{"HASHBRUTE_NO_COLOR"}, flags.EnvVarsWithHashbrutePrefix("no-color"))
}
