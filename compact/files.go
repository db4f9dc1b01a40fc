package compact

import (
	"fmt"
	"sort"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
	"github.com/dargueta/diskfrag/freespace"
)

// Files moves each file, as a unit, into the leftmost free region that can hold
// it. Files are visited once each in descending order of ID. A file only moves
// if the region starts to the left of it; otherwise it stays where it is and
// isn't reconsidered, even if space opens up later.
//
// Every file must occupy a single contiguous run, which is always the case for
// a freshly decoded image. If a file is split across multiple runs, it returns
// an error and the image is not modified.
func Files(img *diskmap.Image) error {
	files, err := filesByDescendingID(img)
	if err != nil {
		return err
	}

	index := freespace.FromImage(img)
	for _, file := range files {
		target, ok := index.FirstFit(file.Length, file.Start)
		if !ok {
			continue
		}

		// The target has to be shrunk before the old location is released. If the
		// two are adjacent, the release coalesces them and the target as returned
		// by FirstFit would no longer be in the index.
		if err = index.Shrink(target, file.Length); err != nil {
			return err
		}
		img.Fill(target.Start, file.Length, file.ID)
		img.Fill(file.Start, file.Length, diskmap.Free)

		err = index.Insert(freespace.Region{Start: file.Start, Length: file.Length})
		if err != nil {
			return err
		}
	}
	return nil
}

func filesByDescendingID(img *diskmap.Image) ([]diskmap.Run, error) {
	files := img.Files()
	seen := make(map[diskmap.FileID]int, len(files))

	for _, file := range files {
		if previous, exists := seen[file.ID]; exists {
			return nil, diskfrag.ErrFileSystemCorrupted.WithMessage(
				fmt.Sprintf(
					"file %d is fragmented: found runs at %d and %d",
					file.ID,
					previous,
					file.Start))
		}
		seen[file.ID] = file.Start
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ID > files[j].ID })
	return files, nil
}
