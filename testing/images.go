package testing

import (
	"crypto/rand"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/dargueta/diskfrag/diskmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// OpenDiskMap returns a stream over the text of a disk map, as if it had been
// read from an input file.
//
//   - Writes to the stream do not affect `diskMap`.
//   - The stream's size is fixed to `len(diskMap)`. Attempting to write past the
//     end of this buffer will trigger an error.
func OpenDiskMap(t *testing.T, diskMap string) io.ReadWriteSeeker {
	return bytesextra.NewReadWriteSeeker([]byte(diskMap))
}

// RandomDiskMap creates a disk map with the given number of runs, each with a
// random length from 0 to 9. It is guaranteed to either return a valid string
// or fail the test and abort.
func RandomDiskMap(t *testing.T, totalRuns uint) string {
	randomBytes := make([]byte, totalRuns)
	_, err := rand.Read(randomBytes)
	require.NoErrorf(t, err, "failed to generate %d random run lengths", totalRuns)

	var builder strings.Builder
	for _, b := range randomBytes {
		builder.WriteByte('0' + b%10)
	}
	return builder.String()
}

// sortedOccupants returns the IDs of every occupied block in ascending order.
func sortedOccupants(img *diskmap.Image) []diskmap.FileID {
	occupants := []diskmap.FileID{}
	for _, id := range img.Blocks() {
		if !id.IsFree() {
			occupants = append(occupants, id)
		}
	}
	sort.Slice(occupants, func(i, j int) bool { return occupants[i] < occupants[j] })
	return occupants
}

// RequireConserved fails the test if compaction changed the size of the image,
// the number of occupied blocks, or the multiset of IDs in those blocks.
func RequireConserved(t *testing.T, before, after *diskmap.Image) {
	require.Equal(t, before.Len(), after.Len(), "image size changed")
	require.Equal(
		t, before.OccupiedBlocks(), after.OccupiedBlocks(), "occupied block count changed")
	assert.Equal(
		t, sortedOccupants(before), sortedOccupants(after), "file IDs not conserved")
}
