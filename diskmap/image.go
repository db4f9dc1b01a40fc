package diskmap

import (
	"strconv"
	"strings"
)

// FileID identifies the file occupying a block.
type FileID int

// Free is the occupant of a block that doesn't belong to any file.
const Free FileID = -1

// IsFree returns true if the ID is the free-block sentinel.
func (id FileID) IsFree() bool {
	return id < 0
}

// Image is a fixed-length sequence of blocks. Compaction moves occupants between
// blocks but never adds or removes blocks.
type Image struct {
	blocks []FileID
}

// New creates an image from an explicit list of block occupants. The slice is
// copied.
func New(blocks []FileID) *Image {
	img := &Image{blocks: make([]FileID, len(blocks))}
	copy(img.blocks, blocks)
	return img
}

// Len returns the total number of blocks in the image, free or not.
func (img *Image) Len() int {
	return len(img.blocks)
}

// At returns the occupant of the block at `pos`. It panics if `pos` is out of
// range.
func (img *Image) At(pos int) FileID {
	return img.blocks[pos]
}

// Swap exchanges the occupants of two blocks.
func (img *Image) Swap(i, j int) {
	img.blocks[i], img.blocks[j] = img.blocks[j], img.blocks[i]
}

// Fill sets `length` blocks starting at `start` to `id`. Passing [Free] releases
// the blocks.
func (img *Image) Fill(start, length int, id FileID) {
	run := img.blocks[start : start+length]
	for i := range run {
		run[i] = id
	}
}

// Blocks returns a copy of the block occupants.
func (img *Image) Blocks() []FileID {
	blocks := make([]FileID, len(img.blocks))
	copy(blocks, img.blocks)
	return blocks
}

// Clone returns an independent copy of the image.
func (img *Image) Clone() *Image {
	return New(img.blocks)
}

// OccupiedBlocks returns the number of blocks that belong to a file.
func (img *Image) OccupiedBlocks() int {
	total := 0
	for _, id := range img.blocks {
		if !id.IsFree() {
			total++
		}
	}
	return total
}

// FileCount returns the number of distinct file IDs present in the image.
func (img *Image) FileCount() int {
	seen := make(map[FileID]struct{})
	for _, id := range img.blocks {
		if !id.IsFree() {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// String renders the image the way the puzzle text does: a `.` for each free
// block and the file ID for each occupied one. IDs above 9 are wrapped in
// parentheses so the output stays unambiguous.
func (img *Image) String() string {
	var builder strings.Builder
	builder.Grow(len(img.blocks))

	for _, id := range img.blocks {
		switch {
		case id.IsFree():
			builder.WriteByte('.')
		case id < 10:
			builder.WriteByte(byte('0' + id))
		default:
			builder.WriteByte('(')
			builder.WriteString(strconv.Itoa(int(id)))
			builder.WriteByte(')')
		}
	}
	return builder.String()
}
