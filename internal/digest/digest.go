// Package digest maps algorithm names to hash constructors.
//
// The search engine only ever sees an Algorithm value, so supporting a new digest is a matter of
// registering it here (or in a caller-owned Registry) under a new name.
package digest

import (
	"hash"
	"sort"
	"strings"
	"sync"

	"github.com/gruntwork-io/hashbrute/internal/errors"
)

// Algorithm is a named digest function.
type Algorithm struct {
	// New returns a fresh hash state. hash.Hash values are not safe for concurrent use, so every
	// goroutine that hashes must own the instance it got from New.
	New func() hash.Hash

	// Name is the lower-case identifier used on the command line.
	Name string

	// Size is the digest length in bytes.
	Size int
}

// Sum returns the digest of input.
func (alg Algorithm) Sum(input []byte) []byte {
	h := alg.New()
	h.Write(input) //nolint:errcheck

	return h.Sum(nil)
}

// Registry is a concurrency safe set of algorithms keyed by name.
type Registry struct {
	algorithms map[string]Algorithm
	mu         sync.RWMutex
}

// NewRegistry returns a registry holding the given algorithms.
func NewRegistry(algs ...Algorithm) (*Registry, error) {
	reg := &Registry{algorithms: make(map[string]Algorithm, len(algs))}

	for _, alg := range algs {
		if err := reg.Register(alg); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Register adds an algorithm. Names are case-insensitive and must be unique.
func (reg *Registry) Register(alg Algorithm) error {
	name := normalizeName(alg.Name)

	if name == "" || alg.New == nil || alg.Size <= 0 {
		return errors.New(&InvalidAlgorithmError{Name: alg.Name})
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.algorithms[name]; ok {
		return errors.New(&DuplicateAlgorithmError{Name: name})
	}

	alg.Name = name
	reg.algorithms[name] = alg

	return nil
}

// Lookup returns the algorithm registered under name.
func (reg *Registry) Lookup(name string) (Algorithm, error) {
	reg.mu.RLock()
	alg, ok := reg.algorithms[normalizeName(name)]
	reg.mu.RUnlock()

	if !ok {
		return Algorithm{}, errors.New(&UnsupportedAlgorithmError{Name: name, Supported: reg.Names()})
	}

	return alg, nil
}

// Names returns the sorted names of all registered algorithms.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.algorithms))
	for name := range reg.algorithms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Algorithms returns all registered algorithms sorted by name.
func (reg *Registry) Algorithms() []Algorithm {
	names := reg.Names()

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	algs := make([]Algorithm, 0, len(names))
	for _, name := range names {
		algs = append(algs, reg.algorithms[name])
	}

	return algs
}

// Compute returns the digest of input under the named algorithm.
func (reg *Registry) Compute(name string, input []byte) ([]byte, error) {
	alg, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}

	return alg.Sum(input), nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
