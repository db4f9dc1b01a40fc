package diskmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dargueta/diskfrag"
)

// decoder expands run lengths into blocks, alternating between file and free
// runs. The zero value is ready to use and starts with file 0.
type decoder struct {
	blocks []FileID
	runs   int
}

// push appends one run. `digit` must already be known to be in '0'..'9'.
func (d *decoder) push(digit byte) {
	length := int(digit - '0')

	occupant := Free
	if d.runs%2 == 0 {
		occupant = FileID(d.runs / 2)
	}
	d.runs++

	for i := 0; i < length; i++ {
		d.blocks = append(d.blocks, occupant)
	}
}

func (d *decoder) image() *Image {
	if d.blocks == nil {
		return &Image{blocks: []FileID{}}
	}
	return &Image{blocks: d.blocks}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// DecodeString expands a disk map held in memory. It never fails; decoding stops
// at the first non-digit.
func DecodeString(diskMap string) *Image {
	d := decoder{blocks: make([]FileID, 0, len(diskMap)*5)}
	for i := 0; i < len(diskMap); i++ {
		if !isDigit(diskMap[i]) {
			break
		}
		d.push(diskMap[i])
	}
	return d.image()
}

// Decode reads a disk map from a stream. Reading stops at EOF or at the first
// non-digit, whichever comes first. Any other read error is returned wrapped in
// [diskfrag.ErrIOFailed].
func Decode(input io.Reader) (*Image, error) {
	source := bufio.NewReader(input)
	d := decoder{}

	for {
		c, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return d.image(), nil
			}
			return nil, diskfrag.ErrIOFailed.Wrap(
				fmt.Errorf("failed to read disk map after %d runs: %w", d.runs, err))
		}

		if !isDigit(c) {
			return d.image(), nil
		}
		d.push(c)
	}
}

// DecodeFile opens the file at `path` and decodes the disk map in it.
func DecodeFile(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, diskfrag.ErrIOFailed.Wrap(err)
	}
	defer file.Close()

	return Decode(file)
}
