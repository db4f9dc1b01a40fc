package compact

import (
	"fmt"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
)

// Policy selects how free space is reclaimed.
type Policy int

const (
	// BlockLevel moves single blocks; see [Blocks].
	BlockLevel Policy = iota
	// WholeFile moves entire files; see [Files].
	WholeFile
)

func (p Policy) String() string {
	switch p {
	case BlockLevel:
		return "block-level"
	case WholeFile:
		return "whole-file"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Run compacts the image in place using the given policy.
func Run(policy Policy, img *diskmap.Image) error {
	switch policy {
	case BlockLevel:
		Blocks(img)
		return nil
	case WholeFile:
		return Files(img)
	default:
		return diskfrag.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("unknown compaction policy %v", policy))
	}
}
