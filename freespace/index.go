// Package freespace tracks the free regions of a disk image and answers first-fit
// queries against them.
//
// Regions are binned by size. Every run length in a disk map is a single digit,
// so a file never needs more than [MaxRunLength] blocks; regions at least that
// long all share the last size class. Each class is a B-tree ordered by position,
// so a first-fit query only has to compare the leftmost region of each class
// that's large enough.

package freespace

import (
	"fmt"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
	"github.com/google/btree"
)

// MaxRunLength is the longest run a disk map can describe.
const MaxRunLength = 9

const btreeDegree = 8

// Region is a contiguous run of free blocks.
type Region struct {
	Start  int
	Length int
}

// End returns the position one past the last block of the region.
func (r Region) End() int {
	return r.Start + r.Length
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}

func byStart(a, b Region) bool {
	return a.Start < b.Start
}

// Index is the set of free regions of an image. The zero value is not usable;
// create one with [New], [FromImage], or [FromAllocationBitmap].
type Index struct {
	// regions holds every region, ordered by position. It's only used to find
	// neighbors when coalescing.
	regions *btree.BTreeG[Region]
	// classes[k] holds the regions of length k+1, except for the last class
	// which holds everything of length MaxRunLength or more.
	classes [MaxRunLength]*btree.BTreeG[Region]
	// freeBlocks is the total length of all regions.
	freeBlocks int
}

// New creates an empty index.
func New() *Index {
	index := &Index{regions: btree.NewG(btreeDegree, byStart)}
	for i := range index.classes {
		index.classes[i] = btree.NewG(btreeDegree, byStart)
	}
	return index
}

// FromImage builds an index from the free blocks of an image.
func FromImage(img *diskmap.Image) *Index {
	return FromAllocationBitmap(img.AllocationBitmap(), img.Len())
}

// FromAllocationBitmap builds an index from a bitmap where a set bit marks an
// allocated block. Only the first `totalBlocks` bits are examined.
func FromAllocationBitmap(allocated bitmap.Bitmap, totalBlocks int) *Index {
	index := New()
	runSize := 0
	runStart := 0

	for i := 0; i < totalBlocks; i++ {
		if allocated.Get(i) {
			// Hit an allocated block, so this is the end of the run.
			if runSize > 0 {
				index.add(Region{Start: runStart, Length: runSize})
			}
			runSize = 0
			continue
		}

		if runSize == 0 {
			runStart = i
		}
		runSize++
	}

	// Free space running off the end of the image.
	if runSize > 0 {
		index.add(Region{Start: runStart, Length: runSize})
	}
	return index
}

func (index *Index) classOf(length int) *btree.BTreeG[Region] {
	if length >= MaxRunLength {
		return index.classes[MaxRunLength-1]
	}
	return index.classes[length-1]
}

// add stores a region without any checks.
func (index *Index) add(region Region) {
	index.regions.ReplaceOrInsert(region)
	index.classOf(region.Length).ReplaceOrInsert(region)
	index.freeBlocks += region.Length
}

// remove drops a region without any checks.
func (index *Index) remove(region Region) {
	index.regions.Delete(region)
	index.classOf(region.Length).Delete(region)
	index.freeBlocks -= region.Length
}

// lookup returns the stored region starting exactly at `start`, if any.
func (index *Index) lookup(start int) (Region, bool) {
	return index.regions.Get(Region{Start: start})
}

// Insert adds a newly freed region, merging it with the regions immediately
// before and after it if they're contiguous. Empty regions are ignored. A region
// that overlaps one already in the index is rejected and the index is not
// modified.
func (index *Index) Insert(region Region) error {
	if region.Length < 0 || region.Start < 0 {
		return diskfrag.ErrArgumentOutOfRange.WithMessage(
			fmt.Sprintf("invalid region %v", region))
	}
	if region.Length == 0 {
		return nil
	}

	var before, after Region
	hasBefore, hasAfter := false, false

	index.regions.DescendLessOrEqual(region, func(item Region) bool {
		before, hasBefore = item, true
		return false
	})
	index.regions.AscendGreaterOrEqual(region, func(item Region) bool {
		after, hasAfter = item, true
		return false
	})

	if hasBefore && before.End() > region.Start {
		return diskfrag.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("region %v overlaps free region %v", region, before))
	}
	if hasAfter && after.Start < region.End() {
		return diskfrag.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("region %v overlaps free region %v", region, after))
	}

	merged := region
	if hasBefore && before.End() == region.Start {
		index.remove(before)
		merged.Start = before.Start
		merged.Length += before.Length
	}
	if hasAfter && after.Start == region.End() {
		index.remove(after)
		merged.Length += after.Length
	}

	index.add(merged)
	return nil
}

// FirstFit returns the region with the lowest starting position that is at
// least `minSize` blocks long and starts before `before`. The size of the region
// doesn't matter beyond that; this is first-fit, not best-fit.
func (index *Index) FirstFit(minSize, before int) (Region, bool) {
	if minSize < 1 {
		minSize = 1
	}

	var best Region
	found := false
	consider := func(candidate Region) {
		if !found || candidate.Start < best.Start {
			best, found = candidate, true
		}
	}

	for length := minSize; length < MaxRunLength; length++ {
		if candidate, ok := index.classes[length-1].Min(); ok {
			consider(candidate)
		}
	}

	// Everything in the last class is at least MaxRunLength long. Only requests
	// bigger than that need to look past the leftmost entry.
	index.classes[MaxRunLength-1].Ascend(func(candidate Region) bool {
		if found && candidate.Start >= best.Start {
			return false
		}
		if candidate.Length >= minSize {
			consider(candidate)
			return false
		}
		return true
	})

	if !found || best.Start >= before {
		return Region{}, false
	}
	return best, true
}

// Shrink records that the first `amount` blocks of `region` are no longer free.
// If anything is left over, the index keeps a smaller region starting right after
// the used blocks; otherwise the region is removed entirely.
//
// `region` must be exactly as stored in the index, usually the return value of
// [Index.FirstFit].
func (index *Index) Shrink(region Region, amount int) error {
	stored, ok := index.lookup(region.Start)
	if !ok || stored != region {
		return diskfrag.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("region %v is not in the index", region))
	}
	if amount < 0 || amount > region.Length {
		return diskfrag.ErrArgumentOutOfRange.WithMessage(
			fmt.Sprintf(
				"can't take %d blocks from region %v of length %d",
				amount,
				region,
				region.Length))
	}

	index.remove(region)
	if amount < region.Length {
		index.add(Region{Start: region.Start + amount, Length: region.Length - amount})
	}
	return nil
}

// Len returns the number of free regions.
func (index *Index) Len() int {
	return index.regions.Len()
}

// FreeBlocks returns the total number of free blocks across all regions.
func (index *Index) FreeBlocks() int {
	return index.freeBlocks
}

// Regions returns every free region in ascending order of position.
func (index *Index) Regions() []Region {
	regions := make([]Region, 0, index.regions.Len())
	index.regions.Ascend(func(item Region) bool {
		regions = append(regions, item)
		return true
	})
	return regions
}
