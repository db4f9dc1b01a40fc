package diskmap

import "github.com/boljen/go-bitmap"

// AllocationBitmap returns a bitmap with one bit per block, set if the block is
// occupied by a file. The bitmap may be a few bits longer than the image, since
// it's rounded up to a whole number of bytes; the extra bits are always clear.
func (img *Image) AllocationBitmap() bitmap.Bitmap {
	allocated := bitmap.New(len(img.blocks))
	for i, id := range img.blocks {
		if !id.IsFree() {
			allocated.Set(i, true)
		}
	}
	return allocated
}
