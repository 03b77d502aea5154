// Package algorithms provides the `hashbrute algorithms` command listing the supported digests.
package algorithms

import (
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/hashbrute/options"
)

const (
	CommandName  = "algorithms"
	CommandAlias = "algos"
)

func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:    CommandName,
		Aliases: []string{CommandAlias},
		Usage:   "List the supported digest algorithms with their size in bytes.",
		Action: func(ctx *cli.Context) error {
			return Run(ctx.Context, opts)
		},
	}
}
