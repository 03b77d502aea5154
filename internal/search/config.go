package search

import (
	"encoding/hex"
	"runtime"
	"strings"
	"time"

	"github.com/gruntwork-io/hashbrute/internal/digest"
	"github.com/gruntwork-io/hashbrute/internal/errors"
)

// DefaultAlphabet holds the 94 printable ASCII characters: digits, lower case, upper case, punctuation.
const DefaultAlphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Defaults used by NewConfig and the CLI.
const (
	DefaultAlgorithm      = digest.MD5
	DefaultMinLen    uint = 6
	DefaultMaxLen    uint = 12
	DefaultBatchSize      = 1024
)

// Config describes one search. Target and Alphabet must not be modified once the search started.
type Config struct {
	// Registry resolves Algorithm. Nil means digest.Default.
	Registry *digest.Registry

	// Algorithm is the digest name, looked up in Registry.
	Algorithm string

	// Target is the digest to find a plaintext for.
	Target []byte

	// Alphabet is the ordered set of characters candidates are built from. Duplicates are allowed.
	Alphabet []rune

	// MinLen and MaxLen bound the candidate length, both inclusive.
	MinLen uint
	MaxLen uint

	// Parallelism is the maximum number of batches evaluated at the same time. Zero means one per CPU.
	Parallelism int

	// BatchSize is the number of candidates per unit of work. Zero means DefaultBatchSize.
	BatchSize int

	// ProgressInterval is the period of the progress log entries. Zero disables them.
	ProgressInterval time.Duration
}

// NewConfig returns a config with the default algorithm, alphabet and length range.
func NewConfig() *Config {
	return &Config{
		Algorithm:   DefaultAlgorithm,
		Alphabet:    []rune(DefaultAlphabet),
		MinLen:      DefaultMinLen,
		MaxLen:      DefaultMaxLen,
		Parallelism: runtime.NumCPU(),
		BatchSize:   DefaultBatchSize,
	}
}

// Validate reports every configuration error at once. It never starts any work.
func (cfg *Config) Validate() error {
	var errs []error

	alg, err := cfg.algorithm()
	if err != nil {
		errs = append(errs, err)
	}

	switch {
	case len(cfg.Target) == 0:
		errs = append(errs, &EmptyTargetError{})
	case err == nil && len(cfg.Target) != alg.Size:
		errs = append(errs, &TargetSizeError{Algorithm: alg.Name, Expected: alg.Size, Actual: len(cfg.Target)})
	}

	if cfg.MinLen > cfg.MaxLen {
		errs = append(errs, &LengthRangeError{MinLen: cfg.MinLen, MaxLen: cfg.MaxLen})
	}

	if len(errs) > 0 {
		return errors.New(errors.Join(errs...))
	}

	return nil
}

func (cfg *Config) algorithm() (digest.Algorithm, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = digest.Default
	}

	alg, err := registry.Lookup(cfg.Algorithm)
	if err != nil {
		return digest.Algorithm{}, &AlgorithmError{Err: err}
	}

	return alg, nil
}

func (cfg *Config) parallelism() int {
	if cfg.Parallelism > 0 {
		return cfg.Parallelism
	}

	return runtime.NumCPU()
}

func (cfg *Config) batchSize() int {
	if cfg.BatchSize > 0 {
		return cfg.BatchSize
	}

	return DefaultBatchSize
}

// lengths returns the number of lengths in the range.
func (cfg *Config) lengths() int64 {
	return int64(cfg.MaxLen-cfg.MinLen) + 1 //nolint:gosec
}

// DecodeTarget decodes a hex encoded digest. Surrounding white space and a 0x prefix are ignored.
func DecodeTarget(str string) ([]byte, error) {
	trimmed := strings.TrimSpace(str)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")

	target, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, errors.New(&MalformedTargetError{Input: str, Err: err})
	}

	if len(target) == 0 {
		return nil, errors.New(&EmptyTargetError{})
	}

	return target, nil
}
