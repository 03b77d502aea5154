package algorithms

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/gruntwork-io/hashbrute/internal/digest"
	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/options"
)

// Run prints one line per registered algorithm: its name and its digest size in bytes.
func Run(_ context.Context, opts *options.Options) error {
	return List(opts, digest.Default)
}

// List prints the algorithms of the given registry.
func List(opts *options.Options, registry *digest.Registry) error {
	w := tabwriter.NewWriter(opts.Writer, 0, 0, 2, ' ', 0) //nolint:mnd

	for _, alg := range registry.Algorithms() {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", alg.Name, alg.Size); err != nil {
			return errors.New(err)
		}
	}

	if err := w.Flush(); err != nil {
		return errors.New(err)
	}

	return nil
}
