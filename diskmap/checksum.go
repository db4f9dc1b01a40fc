package diskmap

import (
	"fmt"
	"math/bits"

	"github.com/dargueta/diskfrag"
)

// Checksum sums `position * id` over every occupied block. Free blocks count for
// nothing.
//
// Overflowing 64 bits means the image is far outside anything a disk map can
// describe, so it panics instead of returning an error.
func Checksum(img *Image) uint64 {
	sum := uint64(0)

	for pos, id := range img.blocks {
		if id.IsFree() {
			continue
		}

		hi, product := bits.Mul64(uint64(pos), uint64(id))
		if hi != 0 {
			panic(diskfrag.ErrResultOutOfRange.WithMessage(
				fmt.Sprintf("checksum term %d * %d overflows 64 bits", pos, id)))
		}

		var carry uint64
		sum, carry = bits.Add64(sum, product, 0)
		if carry != 0 {
			panic(diskfrag.ErrResultOutOfRange.WithMessage(
				fmt.Sprintf("checksum overflows 64 bits at block %d", pos)))
		}
	}
	return sum
}
