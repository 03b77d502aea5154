package search_test

import (
	"crypto/md5" //nolint:gosec
	"hash"
	"io"
	"sync/atomic"
	"testing"

	"github.com/gruntwork-io/hashbrute/internal/digest"
	"github.com/gruntwork-io/hashbrute/pkg/log"
	"github.com/stretchr/testify/require"
)

func newTestLogger() log.Logger {
	return log.New(log.WithOutput(io.Discard), log.WithLevel(log.TraceLevel))
}

func md5Sum(str string) []byte {
	sum := md5.Sum([]byte(str)) //nolint:gosec
	return sum[:]
}

// countingHash is md5 that counts the digests it computes.
type countingHash struct {
	hash.Hash
	sums *atomic.Int64
}

func (h *countingHash) Sum(b []byte) []byte {
	h.sums.Add(1)
	return h.Hash.Sum(b)
}

// lengthHash digests an input to its length, so every candidate of a length collides.
type lengthHash struct {
	n int
}

func (h *lengthHash) Write(p []byte) (int, error) {
	h.n += len(p)
	return len(p), nil
}

func (h *lengthHash) Sum(b []byte) []byte { return append(b, byte(h.n)) }
func (h *lengthHash) Reset()              { h.n = 0 }
func (h *lengthHash) Size() int           { return 1 }
func (h *lengthHash) BlockSize() int      { return 1 }

// panicHash panics on the first write.
type panicHash struct {
	lengthHash
}

func (h *panicHash) Write([]byte) (int, error) {
	panic("digest exploded")
}

func newTestRegistry(t *testing.T) (*digest.Registry, *atomic.Int64) {
	t.Helper()

	sums := new(atomic.Int64)

	reg, err := digest.NewRegistry(
		digest.Algorithm{Name: "md5", Size: md5.Size, New: md5.New},
		digest.Algorithm{Name: "counting-md5", Size: md5.Size, New: func() hash.Hash {
			return &countingHash{Hash: md5.New(), sums: sums} //nolint:gosec
		}},
		digest.Algorithm{Name: "length", Size: 1, New: func() hash.Hash { return new(lengthHash) }},
		digest.Algorithm{Name: "panic", Size: 1, New: func() hash.Hash { return new(panicHash) }},
	)
	require.NoError(t, err)

	return reg, sums
}
