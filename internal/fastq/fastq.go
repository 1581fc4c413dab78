// Package fastq locates demultiplexed fastq files for the samples of a
// project and stages them into a local fastq directory.
package fastq

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// Files holds the fastq paths matched for a single sample, split by read.
type Files struct {
	R1 []string
	R2 []string
}

// Sample pairs a sample ID with the fastq files found for it across all
// project directories. Paired is set when any R2 file exists anywhere.
type Sample struct {
	ID     string
	Files  Files
	Paired bool
}

// Index is a one-pass listing of the fastq files under a single project
// directory. Matching runs against the listing instead of walking the
// tree once per sample.
type Index struct {
	projectDir string
	root       string
	paths      []string
}

// NewIndex walks projectDir and records every fastq file beneath it in
// sorted order.
func NewIndex(projectDir string) (*Index, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory %s: %w", projectDir, err)
	}
	ix := &Index{
		projectDir: abs,
		root:       filepath.Dir(filepath.Dir(abs)),
	}
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".fastq.gz") {
			ix.paths = append(ix.paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("index fastq files in %s: %w", projectDir, err)
	}
	slices.Sort(ix.paths)
	return ix, nil
}

// Match returns the fastq files recorded for sampleID, split into R1 and
// R2 reads. With relative set the paths are reported relative to the
// parent of the run folder, so they begin with the run folder name.
func (ix *Index) Match(sampleID string, relative bool) (Files, error) {
	var files Files
	for _, path := range ix.paths {
		base := filepath.Base(path)
		r1, err := filepath.Match(sampleID+"_*R1*.fastq.gz", base)
		if err != nil {
			return Files{}, fmt.Errorf("match fastq files for sample %s: %w", sampleID, err)
		}
		r2, err := filepath.Match(sampleID+"_*R2*.fastq.gz", base)
		if err != nil {
			return Files{}, fmt.Errorf("match fastq files for sample %s: %w", sampleID, err)
		}
		if !r1 && !r2 {
			continue
		}
		out := path
		if relative {
			rel, err := filepath.Rel(ix.root, path)
			if err != nil {
				return Files{}, fmt.Errorf("relativize %s: %w", path, err)
			}
			out = rel
		}
		if r1 {
			files.R1 = append(files.R1, out)
		}
		if r2 {
			files.R2 = append(files.R2, out)
		}
	}
	return files, nil
}

// CollectSamples matches every sample ID against every project directory
// and reports the combined fastq files in sample sheet order. Paths are
// relative to the parent of each run folder. A sample without any match
// is kept with empty file lists.
func CollectSamples(sampleIDs, projectDirs []string) ([]Sample, error) {
	indexes := make([]*Index, 0, len(projectDirs))
	for _, dir := range projectDirs {
		ix, err := NewIndex(dir)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, ix)
	}

	samples := make([]Sample, 0, len(sampleIDs))
	for _, id := range sampleIDs {
		sample := Sample{ID: id}
		for _, ix := range indexes {
			files, err := ix.Match(id, true)
			if err != nil {
				return nil, err
			}
			sample.Files.R1 = append(sample.Files.R1, files.R1...)
			sample.Files.R2 = append(sample.Files.R2, files.R2...)
		}
		sample.Paired = len(sample.Files.R2) > 0
		samples = append(samples, sample)
	}
	return samples, nil
}
