// Package app holds the command-line front end shared by the defrag binaries.
// Each binary is built with exactly one compaction policy.

package app

import (
	"fmt"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/compact"
	"github.com/dargueta/diskfrag/diskmap"
	"github.com/urfave/cli/v2"
)

// New creates the CLI application for a binary using the given policy.
func New(name, usage string, policy compact.Policy) *cli.App {
	return &cli.App{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "DISK_MAP_FILE",
		Action: func(context *cli.Context) error {
			return checksumImage(context, policy)
		},
	}
}

func checksumImage(context *cli.Context, policy compact.Policy) error {
	if context.NArg() != 1 {
		return diskfrag.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("expected exactly one disk map file, got %d arguments", context.NArg()))
	}

	img, err := diskmap.DecodeFile(context.Args().First())
	if err != nil {
		return err
	}

	if err = compact.Run(policy, img); err != nil {
		return err
	}

	_, err = fmt.Fprintln(context.App.Writer, diskmap.Checksum(img))
	return err
}
