package samplesheet_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"configmaker/internal/samplesheet"
)

func writeSheetAt(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	path := filepath.Join(dir, "SampleSheet.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return path
}

func TestLocateExplicitPath(t *testing.T) {
	path := writeSheet(t, iemSheet)

	sheets, err := samplesheet.Locate(path, nil, "SampleSheet.csv")
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if len(sheets) != 1 || sheets[0] != path {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
}

func TestLocateExplicitPathMissing(t *testing.T) {
	_, err := samplesheet.Locate(filepath.Join(t.TempDir(), "nope.csv"), nil, "SampleSheet.csv")
	if !errors.Is(err, samplesheet.ErrSampleSheetNotFound) {
		t.Fatalf("expected ErrSampleSheetNotFound, got %v", err)
	}
}

func TestLocateDiscoversPerFolder(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "run1")
	second := filepath.Join(root, "run2")
	third := filepath.Join(root, "run3")
	firstSheet := writeSheetAt(t, first, iemSheet)
	thirdSheet := writeSheetAt(t, third, iemSheet)
	if err := os.MkdirAll(second, 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}

	sheets, err := samplesheet.Locate("", []string{first, second, third}, "SampleSheet.csv")
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if len(sheets) != 2 || sheets[0] != firstSheet || sheets[1] != thirdSheet {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
}

func TestLocateNothingFound(t *testing.T) {
	_, err := samplesheet.Locate("", []string{t.TempDir()}, "SampleSheet.csv")
	if !errors.Is(err, samplesheet.ErrSampleSheetNotFound) {
		t.Fatalf("expected ErrSampleSheetNotFound, got %v", err)
	}
}

func TestCollectFiltersAndDedupes(t *testing.T) {
	path := writeSheet(t, iemSheet)

	collection, err := samplesheet.Collect([]string{path}, "GCF-2020-001")
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(collection.SampleIDs) != 2 {
		t.Fatalf("expected 2 samples, got %v", collection.SampleIDs)
	}
	if collection.SampleIDs[0] != "S1" || collection.SampleIDs[1] != "S2" {
		t.Fatalf("unexpected sample order: %v", collection.SampleIDs)
	}
	if collection.Options["MergeLanes"] != true {
		t.Fatalf("expected MergeLanes option, got %v", collection.Options)
	}
}

func TestCollectMergesOptionsAcrossSheetsLaterWins(t *testing.T) {
	first := writeSheetAt(t, filepath.Join(t.TempDir(), "run1"),
		"[CustomOptions]\nOrganism,mouse\nLibprep,KitA\n[Data]\nSample_ID,Sample_Project\nS1,P1\n")
	second := writeSheetAt(t, filepath.Join(t.TempDir(), "run2"),
		"[CustomOptions]\nOrganism,human\n[Data]\nSample_ID,Sample_Project\nS2,P1\n")

	collection, err := samplesheet.Collect([]string{first, second}, "P1")
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if collection.Options["Organism"] != "human" {
		t.Fatalf("Organism = %v, want later sheet to win", collection.Options["Organism"])
	}
	if collection.Options["Libprep"] != "KitA" {
		t.Fatalf("Libprep = %v, want value carried from first sheet", collection.Options["Libprep"])
	}
	if len(collection.SampleIDs) != 2 {
		t.Fatalf("expected samples from both sheets, got %v", collection.SampleIDs)
	}
}

func TestCollectDedupesAcrossSheets(t *testing.T) {
	content := "[Data]\nSample_ID,Sample_Project\nS1,P1\nS2,P1\n"
	first := writeSheetAt(t, filepath.Join(t.TempDir(), "run1"), content)
	second := writeSheetAt(t, filepath.Join(t.TempDir(), "run2"), "[Data]\nSample_ID,Sample_Project\nS2,P1\nS3,P1\n")

	collection, err := samplesheet.Collect([]string{first, second}, "P1")
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	want := []string{"S1", "S2", "S3"}
	if len(collection.SampleIDs) != len(want) {
		t.Fatalf("samples = %v, want %v", collection.SampleIDs, want)
	}
	for i, id := range want {
		if collection.SampleIDs[i] != id {
			t.Fatalf("samples = %v, want %v", collection.SampleIDs, want)
		}
	}
}

func TestCollectSkipsEmptySampleIDs(t *testing.T) {
	path := writeSheetAt(t, t.TempDir(), "[Data]\nSample_ID,Sample_Project\n,P1\nS1,P1\n")

	collection, err := samplesheet.Collect([]string{path}, "P1")
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(collection.SampleIDs) != 1 || collection.SampleIDs[0] != "S1" {
		t.Fatalf("unexpected samples: %v", collection.SampleIDs)
	}
}

func TestCollectPropagatesParseErrors(t *testing.T) {
	path := writeSheetAt(t, t.TempDir(), "[Header]\nnothing here\n")

	_, err := samplesheet.Collect([]string{path}, "P1")
	if !errors.Is(err, samplesheet.ErrMalformedSampleSheet) {
		t.Fatalf("expected ErrMalformedSampleSheet, got %v", err)
	}
}
