// Package samples provides a catalog of disk maps whose checksums are known for
// both compaction policies.

package samples

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/dargueta/diskfrag"
	"github.com/gocarina/gocsv"
)

// Sample is a disk map together with the checksum each compaction policy must
// produce for it.
type Sample struct {
	Slug          string `csv:"slug"`
	DiskMap       string `csv:"disk_map"`
	BlockChecksum uint64 `csv:"block_checksum"`
	FileChecksum  uint64 `csv:"file_checksum"`
	Notes         string `csv:"notes"`
}

//go:embed samples.csv
var samplesRawCSV string
var samples map[string]Sample

// Get returns the sample with the given slug.
func Get(slug string) (Sample, error) {
	sample, ok := samples[slug]
	if ok {
		return sample, nil
	}
	return Sample{}, diskfrag.ErrNotFound.WithMessage(
		fmt.Sprintf("no sample disk map exists with slug %q", slug))
}

// All returns every sample, sorted by slug.
func All() []Sample {
	all := make([]Sample, 0, len(samples))
	for _, sample := range samples {
		all = append(all, sample)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Slug < all[j].Slug })
	return all
}

func init() {
	csvReader := csv.NewReader(strings.NewReader(samplesRawCSV))
	csvReader.Comma = '|'

	var rows []Sample
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		panic(fmt.Errorf("failed to decode sample disk maps: %w", err))
	}

	samples = make(map[string]Sample, len(rows))
	for i, row := range rows {
		_, exists := samples[row.Slug]
		if exists {
			message := fmt.Errorf(
				"duplicate definition for sample %q found on row %d", row.Slug, i+1)
			panic(message)
		}
		samples[row.Slug] = row
	}
}
