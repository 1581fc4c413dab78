package samplesheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrSampleSheetNotFound  = errors.New("sample sheet not found")
	ErrMalformedSampleSheet = errors.New("malformed sample sheet")
)

// Row is one [Data] table row. Columns beyond these two are ignored.
type Row struct {
	SampleID      string `csv:"Sample_ID"`
	SampleProject string `csv:"Sample_Project"`
}

// Sheet is one parsed sample sheet.
type Sheet struct {
	Path    string
	Rows    []*Row
	Options map[string]any
}

// Collection is the combined result over every located sheet.
type Collection struct {
	// SampleIDs are the project's sample IDs in sheet order, first
	// occurrence kept on duplicates.
	SampleIDs []string
	// Options are the merged custom options, later sheets overriding
	// earlier keys.
	Options map[string]any
}

// Locate returns the sample sheet paths to parse. An explicit path must
// exist; otherwise every run folder containing the discovery filename
// contributes one sheet, and finding none is an error.
func Locate(explicit string, folders []string, filename string) ([]string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrSampleSheetNotFound, explicit)
		}
		return []string{explicit}, nil
	}

	var sheets []string
	for _, folder := range folders {
		path := filepath.Join(folder, filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			sheets = append(sheets, path)
		}
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: cannot find %s in %s", ErrSampleSheetNotFound, filename, strings.Join(folders, ", "))
	}
	return sheets, nil
}

// Collect parses every sheet, keeps the rows belonging to the project, and
// merges the per-sheet custom options.
func Collect(paths []string, projectID string) (Collection, error) {
	collection := Collection{Options: make(map[string]any)}
	seen := make(map[string]struct{})
	for _, path := range paths {
		sheet, err := ParseFile(path)
		if err != nil {
			return Collection{}, err
		}
		for _, row := range sheet.Rows {
			if row.SampleProject != projectID || row.SampleID == "" {
				continue
			}
			if _, ok := seen[row.SampleID]; ok {
				continue
			}
			seen[row.SampleID] = struct{}{}
			collection.SampleIDs = append(collection.SampleIDs, row.SampleID)
		}
		for key, value := range sheet.Options {
			collection.Options[key] = value
		}
	}
	return collection, nil
}
