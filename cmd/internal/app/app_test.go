package app_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/cmd/internal/app"
	"github.com/dargueta/diskfrag/compact"
	"github.com/dargueta/diskfrag/samples"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp writes `diskMap` to a temporary file, runs the app on it, and returns
// whatever it printed.
func runApp(t *testing.T, policy compact.Policy, diskMap string) (string, error) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(diskMap+"\n"), 0o644))

	outputBuffer := make([]byte, 64)
	cli := app.New("defrag-test", "test", policy)
	cli.Writer = bytewriter.New(outputBuffer)

	err := cli.Run([]string{"defrag-test", path})
	return strings.TrimRight(string(outputBuffer), "\x00"), err
}

func TestAppPrintsChecksum(t *testing.T) {
	for _, sample := range samples.All() {
		t.Run(sample.Slug, func(t *testing.T) {
			output, err := runApp(t, compact.BlockLevel, sample.DiskMap)
			require.NoError(t, err)
			assert.Equal(t, strconv.FormatUint(sample.BlockChecksum, 10)+"\n", output, "block-level")

			output, err = runApp(t, compact.WholeFile, sample.DiskMap)
			require.NoError(t, err)
			assert.Equal(t, strconv.FormatUint(sample.FileChecksum, 10)+"\n", output, "whole-file")
		})
	}
}

func TestAppMissingFile(t *testing.T) {
	cli := app.New("defrag-test", "test", compact.BlockLevel)
	cli.Writer = bytewriter.New(make([]byte, 64))

	err := cli.Run([]string{"defrag-test", filepath.Join(t.TempDir(), "nope.txt")})
	assert.ErrorIs(t, err, diskfrag.ErrIOFailed)
}

func TestAppWrongArgumentCount(t *testing.T) {
	cli := app.New("defrag-test", "test", compact.WholeFile)
	cli.Writer = bytewriter.New(make([]byte, 64))

	err := cli.Run([]string{"defrag-test"})
	assert.ErrorIs(t, err, diskfrag.ErrInvalidArgument)

	err = cli.Run([]string{"defrag-test", "a.txt", "b.txt"})
	assert.ErrorIs(t, err, diskfrag.ErrInvalidArgument)
}
