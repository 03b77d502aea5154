package search

import (
	"time"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	engine "github.com/gruntwork-io/hashbrute/internal/search"
	"github.com/gruntwork-io/hashbrute/options"
)

type Options struct {
	*options.Options

	// Algorithm is the digest algorithm name.
	Algorithm string

	// Dictionary holds the characters candidates are built from.
	Dictionary string

	// Hash is the hex encoded target, taken from the first argument.
	Hash string

	MinLen uint
	MaxLen uint

	// Parallelism is the worker pool width.
	Parallelism int

	// BatchSize is the number of candidates per unit of work.
	BatchSize int

	// Timeout bounds the whole search. Zero means no deadline.
	Timeout time.Duration

	// ProgressInterval is the period of the progress logs. Zero disables them.
	ProgressInterval time.Duration
}

func NewOptions(opts *options.Options) *Options {
	cfg := engine.NewConfig()

	return &Options{
		Options:     opts,
		Algorithm:   cfg.Algorithm,
		Dictionary:  string(cfg.Alphabet),
		MinLen:      cfg.MinLen,
		MaxLen:      cfg.MaxLen,
		Parallelism: cfg.Parallelism,
		BatchSize:   cfg.BatchSize,
	}
}

// Config converts the options to a validated search config.
func (o *Options) Config() (*engine.Config, error) {
	var errs []error

	if o.Timeout < 0 {
		errs = append(errs, &NegativeDurationError{Flag: TimeoutFlagName, Value: o.Timeout})
	}

	if o.ProgressInterval < 0 {
		errs = append(errs, &NegativeDurationError{Flag: ProgressIntervalFlagName, Value: o.ProgressInterval})
	}

	if len(errs) > 0 {
		return nil, errors.New(errors.Join(errs...))
	}

	target, err := engine.DecodeTarget(o.Hash)
	if err != nil {
		return nil, err
	}

	cfg := engine.NewConfig()
	cfg.Algorithm = o.Algorithm
	cfg.Target = target
	cfg.Alphabet = []rune(o.Dictionary)
	cfg.MinLen = o.MinLen
	cfg.MaxLen = o.MaxLen
	cfg.Parallelism = o.Parallelism
	cfg.BatchSize = o.BatchSize
	cfg.ProgressInterval = o.ProgressInterval

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
