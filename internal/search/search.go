// Package search finds a plaintext whose digest matches a target by enumerating every string over an
// alphabet, one length at a time, and hashing the candidates on a bounded pool of workers.
//
// The first match wins. Once it is recorded the remaining work winds down and Run returns the match
// after every worker has stopped.
package search

import (
	"context"

	"github.com/gruntwork-io/hashbrute/pkg/log"
)

// Run validates cfg and searches for a plaintext whose digest is cfg.Target.
//
// It returns a Found or NotFound result when the search completes, a ConfigError when cfg is invalid,
// and a *CanceledError when ctx ends first.
func Run(ctx context.Context, l log.Logger, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	alg, err := cfg.algorithm()
	if err != nil {
		return nil, err
	}

	return NewCoordinator(l, cfg, alg).Run(ctx)
}
