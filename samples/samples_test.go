package samples_test

import (
	"testing"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExample(t *testing.T) {
	sample, err := samples.Get("example")
	require.NoError(t, err)
	assert.Equal(t, "2333133121414131402", sample.DiskMap)
	assert.EqualValues(t, 1928, sample.BlockChecksum)
	assert.EqualValues(t, 2858, sample.FileChecksum)
}

func TestGetEmptyDiskMap(t *testing.T) {
	sample, err := samples.Get("empty")
	require.NoError(t, err)
	assert.Empty(t, sample.DiskMap)
}

func TestGetMissing(t *testing.T) {
	_, err := samples.Get("asdfqwerty")
	assert.ErrorIs(t, err, diskfrag.ErrNotFound)
}

func TestAllSortedAndUnique(t *testing.T) {
	all := samples.All()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Slug, all[i].Slug, "samples out of order at %d", i)
	}
}
