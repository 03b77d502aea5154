package search

import (
	"bytes"
	"hash"

	"github.com/gruntwork-io/hashbrute/internal/digest"
)

// Evaluator hashes candidates and compares them with the target.
// An Evaluator owns its hash state and must not be shared between goroutines.
type Evaluator struct {
	hash   hash.Hash
	target []byte
	sum    []byte
}

// NewEvaluator returns an evaluator for the given algorithm and target.
func NewEvaluator(alg digest.Algorithm, target []byte) *Evaluator {
	return &Evaluator{
		hash:   alg.New(),
		target: target,
		sum:    make([]byte, 0, alg.Size),
	}
}

// Evaluate reports whether the digest of candidate is the target.
func (ev *Evaluator) Evaluate(candidate []byte) bool {
	ev.hash.Reset()
	ev.hash.Write(candidate) //nolint:errcheck

	ev.sum = ev.hash.Sum(ev.sum[:0])

	return bytes.Equal(ev.sum, ev.target)
}
