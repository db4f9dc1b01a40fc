package diskmap

import (
	"errors"
	"io"
)

// Run is a maximal sequence of adjacent blocks with the same occupant.
type Run struct {
	// ID is the occupant of every block in the run. It's [Free] for free space.
	ID FileID
	// Start is the position of the first block of the run.
	Start int
	// Length gives the number of blocks in the run. A valid run will always have
	// this be 1 or greater. A value less than 1 indicates the end of the image
	// was reached.
	Length int
}

// InvalidRun is returned by [RunGrouper.GetNextRun] once the image is exhausted.
var InvalidRun = Run{ID: Free, Start: 0, Length: 0}

// End returns the position one past the last block of the run.
func (r Run) End() int {
	return r.Start + r.Length
}

// RunGrouper walks an image from left to right and returns one run at a time.
type RunGrouper struct {
	image    *Image
	position int
}

func NewRunGrouper(img *Image) *RunGrouper {
	return &RunGrouper{image: img}
}

// GetNextRun returns the next [Run] in the image. Once every block has been
// consumed it returns [InvalidRun] and io.EOF.
func (grouper *RunGrouper) GetNextRun() (Run, error) {
	blocks := grouper.image.blocks
	if grouper.position >= len(blocks) {
		return InvalidRun, io.EOF
	}

	start := grouper.position
	occupant := blocks[start]
	end := start + 1
	for end < len(blocks) && blocks[end] == occupant {
		end++
	}

	grouper.position = end
	return Run{ID: occupant, Start: start, Length: end - start}, nil
}

// Runs returns every run in the image in ascending order of position.
func (img *Image) Runs() []Run {
	return img.collectRuns(func(Run) bool { return true })
}

// Files returns the runs occupied by files, in ascending order of position. On a
// freshly decoded image this is also ascending order of ID, and each file has
// exactly one run.
func (img *Image) Files() []Run {
	return img.collectRuns(func(r Run) bool { return !r.ID.IsFree() })
}

// FreeRegions returns the maximal runs of free blocks in ascending order of
// position.
func (img *Image) FreeRegions() []Run {
	return img.collectRuns(func(r Run) bool { return r.ID.IsFree() })
}

func (img *Image) collectRuns(keep func(Run) bool) []Run {
	grouper := NewRunGrouper(img)
	runs := []Run{}

	for {
		run, err := grouper.GetNextRun()
		if errors.Is(err, io.EOF) {
			return runs
		}
		if keep(run) {
			runs = append(runs, run)
		}
	}
}
