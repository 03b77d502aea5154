package algorithms_test

import (
	"bytes"
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"io"
	"strings"
	"testing"

	"github.com/gruntwork-io/hashbrute/cli/commands/algorithms"
	"github.com/gruntwork-io/hashbrute/internal/digest"
	"github.com/gruntwork-io/hashbrute/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	reg, err := digest.NewRegistry(
		digest.Algorithm{Name: "sha1", Size: sha1.Size, New: sha1.New},
		digest.Algorithm{Name: "md5", Size: md5.Size, New: md5.New},
	)
	require.NoError(t, err)

	stdout := new(bytes.Buffer)
	opts := options.NewOptionsForTest(stdout, io.Discard)

	require.NoError(t, algorithms.List(opts, reg))
	assert.Equal(t, "md5   16\nsha1  20\n", stdout.String())
}

func TestRunListsBuiltins(t *testing.T) {
	t.Parallel()

	stdout := new(bytes.Buffer)
	opts := options.NewOptionsForTest(stdout, io.Discard)

	require.NoError(t, algorithms.Run(t.Context(), opts))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, len(digest.Names()))

	fields := make(map[string]string, len(lines))

	for _, line := range lines {
		parts := strings.Fields(line)
		require.Len(t, parts, 2)

		fields[parts[0]] = parts[1]
	}

	assert.Equal(t, "16", fields[digest.MD5])
	assert.Equal(t, "32", fields[digest.SHA256])
	assert.Equal(t, "64", fields[digest.SHA512])
}
