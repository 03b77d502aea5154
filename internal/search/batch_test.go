package search

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Parallel()

	b := newBatch(3)
	b.reset(2)

	b.add([][]byte{[]byte("a"), []byte("б")})
	b.add([][]byte{[]byte("c"), []byte("d")})

	assert.Equal(t, 2, b.len())
	assert.False(t, b.full())
	assert.Equal(t, "aб", string(b.at(0)))
	assert.Equal(t, "cd", string(b.at(1)))

	b.add(nil)
	assert.True(t, b.full())
	assert.Empty(t, b.at(2))

	b.reset(5)
	assert.Zero(t, b.len())
	assert.Equal(t, uint(5), b.length)
}

func TestProgressMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		total     *big.Int
		expected  string
		evaluated int64
		elapsed   time.Duration
	}{
		{big.NewInt(1000), "Evaluated 250 of 1000 candidates (25.0000%, 125/s)", 250, 2 * time.Second},
		{big.NewInt(0), "Evaluated 0 of 0 candidates (0.0000%, 0/s)", 0, time.Second},
		{big.NewInt(10), "Evaluated 10 of 10 candidates (100.0000%, 10/s)", 10, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, progressMessage(tc.evaluated, tc.total, tc.elapsed))
		})
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "found", StateFound.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
	assert.Equal(t, "canceled", StateCanceled.String())
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "not found", NotFound.String())
}
