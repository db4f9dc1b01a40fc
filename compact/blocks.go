// Package compact moves file blocks toward the start of a disk image so that the
// free space collects at the end.
//
// Two policies are available. [Blocks] moves individual blocks and may split a
// file across the image; [Files] only ever moves whole files, and only when a
// large enough gap exists to the left of them.

package compact

import "github.com/dargueta/diskfrag/diskmap"

// Blocks repeatedly moves the rightmost occupied block into the leftmost free
// block until every occupied block comes before every free block.
//
// Both cursors only ever move toward each other: everything left of `left` is
// occupied and everything right of `right` is free, and a swap never changes
// that. This gives the same result as rescanning the image after every move,
// in linear time.
func Blocks(img *diskmap.Image) {
	left := 0
	right := img.Len() - 1

	for {
		for left < right && !img.At(left).IsFree() {
			left++
		}
		for right > left && img.At(right).IsFree() {
			right--
		}
		if left >= right {
			return
		}
		img.Swap(left, right)
	}
}
