package compact_test

import (
	"testing"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/compact"
	"github.com/dargueta/diskfrag/diskmap"
	"github.com/dargueta/diskfrag/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const F = diskmap.Free

func TestBlocksSmall(t *testing.T) {
	img := diskmap.New([]diskmap.FileID{F, 1, F, F, 2, F})
	compact.Blocks(img)
	assert.Equal(t, []diskmap.FileID{2, 1, F, F, F, F}, img.Blocks())
}

func TestBlocksExample(t *testing.T) {
	img := diskmap.DecodeString("2333133121414131402")
	compact.Blocks(img)
	assert.Equal(t, "0099811188827773336446555566..............", img.String())
	assert.EqualValues(t, 1928, diskmap.Checksum(img))
}

func TestBlocksDegenerateImages(t *testing.T) {
	for _, diskMap := range []string{"", "1", "09", "90909", "0"} {
		t.Run(diskMap, func(t *testing.T) {
			img := diskmap.DecodeString(diskMap)
			before := img.String()
			compact.Blocks(img)
			assert.Equal(t, before, img.String(), "already compact image was changed")
		})
	}
}

func TestFilesExample(t *testing.T) {
	img := diskmap.DecodeString("2333133121414131402")
	require.NoError(t, compact.Files(img))
	assert.Equal(t, "00992111777.44.333....5555.6666.....8888..", img.String())
	assert.EqualValues(t, 2858, diskmap.Checksum(img))
}

func TestFilesNothingFits(t *testing.T) {
	img := diskmap.DecodeString("12345")
	require.NoError(t, compact.Files(img))
	assert.Equal(t, "0..111....22222", img.String())
}

func TestFilesMoveIntoAdjacentGap(t *testing.T) {
	// File 1 sits right after the gap it moves into, so its old blocks coalesce
	// with what's left of the gap.
	img := diskmap.New([]diskmap.FileID{0, F, F, F, 1, 1, F})
	require.NoError(t, compact.Files(img))
	assert.Equal(t, "011....", img.String())
}

func TestFilesNotReconsidered(t *testing.T) {
	// File 2 can't move when it's visited. Moving file 1 afterward opens a gap
	// big enough for it, but it stays put.
	img := diskmap.DecodeString("12113")
	require.Equal(t, "0..1.222", img.String())

	require.NoError(t, compact.Files(img))
	assert.Equal(t, "01...222", img.String())
	assert.EqualValues(t, 37, diskmap.Checksum(img))
}

func TestFilesFragmented(t *testing.T) {
	img := diskmap.New([]diskmap.FileID{0, 1, F, 1, F, F})
	err := compact.Files(img)
	assert.ErrorIs(t, err, diskfrag.ErrFileSystemCorrupted)
	assert.Equal(t, "01.1..", img.String(), "image modified despite error")
}

func TestRunPolicies(t *testing.T) {
	for _, sample := range samples.All() {
		t.Run(sample.Slug, func(t *testing.T) {
			img := diskmap.DecodeString(sample.DiskMap)
			require.NoError(t, compact.Run(compact.BlockLevel, img))
			assert.Equal(t, sample.BlockChecksum, diskmap.Checksum(img), "block-level")

			img = diskmap.DecodeString(sample.DiskMap)
			require.NoError(t, compact.Run(compact.WholeFile, img))
			assert.Equal(t, sample.FileChecksum, diskmap.Checksum(img), "whole-file")
		})
	}
}

func TestRunUnknownPolicy(t *testing.T) {
	err := compact.Run(compact.Policy(99), diskmap.DecodeString("12345"))
	assert.ErrorIs(t, err, diskfrag.ErrInvalidArgument)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "block-level", compact.BlockLevel.String())
	assert.Equal(t, "whole-file", compact.WholeFile.String())
	assert.Equal(t, "Policy(7)", compact.Policy(7).String())
}
