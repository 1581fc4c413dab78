package settings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"configmaker/internal/settings"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(settings.EnvSettingsPath, "")

	cfg, resolved, exists, err := settings.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected settings file to be absent in temp HOME")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}

	pattern := cfg.ProjectPattern()
	if pattern == nil {
		t.Fatal("expected compiled project pattern")
	}
	if !pattern.MatchString("GCF-2023-123") {
		t.Fatal("expected default pattern to match GCF-2023-123")
	}
	if pattern.MatchString("GCF-23-123") {
		t.Fatal("expected default pattern to reject short year")
	}
	if pattern.MatchString("xGCF-2023-123y") {
		t.Fatal("expected default pattern to be anchored")
	}

	if got := cfg.SequencerModel("NB501038"); got != "NextSeq 500" {
		t.Fatalf("SequencerModel(NB501038) = %q, want NextSeq 500", got)
	}
	if got := cfg.SequencerModel("UNKNOWN"); got != "" {
		t.Fatalf("SequencerModel(UNKNOWN) = %q, want empty", got)
	}
	if len(cfg.Sequencers) != 6 {
		t.Fatalf("expected 6 default sequencers, got %d", len(cfg.Sequencers))
	}

	if cfg.SampleSheet.Filename != "SampleSheet.csv" {
		t.Fatalf("unexpected sample sheet filename: %q", cfg.SampleSheet.Filename)
	}
	if cfg.Submission.FormFilename != "Sample-Submission-Form.xlsx" {
		t.Fatalf("unexpected form filename: %q", cfg.Submission.FormFilename)
	}
	if cfg.Submission.CustomerSheet != 0 || cfg.Submission.CustomerSkipRows != 14 || cfg.Submission.LabSheet != 2 {
		t.Fatalf("unexpected workbook layout: %+v", cfg.Submission)
	}
	if cfg.Staging.FastqDir != "data/raw/fastq" {
		t.Fatalf("unexpected staging dir: %q", cfg.Staging.FastqDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPathMergesCatalog(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "configmaker.toml")
	content := `
[project]
id_pattern = '^ABC-\d{4}-\d{3}$'

[sequencers]
A00123 = "NovaSeq 6000"
NB501038 = "NextSeq 500 Mk2"

[submission]
customer_skip_rows = 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	cfg, resolved, exists, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}

	if !cfg.ProjectPattern().MatchString("ABC-2023-001") {
		t.Fatal("expected custom pattern to match ABC-2023-001")
	}
	if cfg.ProjectPattern().MatchString("GCF-2023-001") {
		t.Fatal("expected custom pattern to reject GCF IDs")
	}

	if got := cfg.SequencerModel("A00123"); got != "NovaSeq 6000" {
		t.Fatalf("expected new catalog entry, got %q", got)
	}
	if got := cfg.SequencerModel("NB501038"); got != "NextSeq 500 Mk2" {
		t.Fatalf("expected overridden catalog entry, got %q", got)
	}
	if got := cfg.SequencerModel("K00251"); got != "HiSeq 4000" {
		t.Fatalf("expected untouched default entry, got %q", got)
	}

	if cfg.Submission.CustomerSkipRows != 10 {
		t.Fatalf("expected skip rows 10, got %d", cfg.Submission.CustomerSkipRows)
	}
	if cfg.Submission.LabSheet != 2 {
		t.Fatalf("expected default lab sheet, got %d", cfg.Submission.LabSheet)
	}
}

func TestLoadInvalidPatternFails(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "configmaker.toml")
	if err := os.WriteFile(path, []byte("[project]\nid_pattern = '['\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	_, _, _, err := settings.Load(path)
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !strings.Contains(err.Error(), "project.id_pattern") {
		t.Fatalf("expected pattern error, got: %v", err)
	}
}

func TestLoadNegativeSheetIndexFails(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "configmaker.toml")
	if err := os.WriteFile(path, []byte("[submission]\nlab_sheet = -1\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	if _, _, _, err := settings.Load(path); err == nil {
		t.Fatal("expected error for negative sheet index")
	}
}

func TestLoadMissingExplicitPathFallsBackToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, resolved, exists, err := settings.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.SequencerModel("M02675") != "MiSeq NTNU" {
		t.Fatal("expected default catalog")
	}
}

func TestLoadHonoursEnvPath(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "env.toml")
	if err := os.WriteFile(path, []byte("[sample_sheet]\nfilename = \"Sheet.csv\"\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv(settings.EnvSettingsPath, path)

	cfg, resolved, exists, err := settings.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.SampleSheet.Filename != "Sheet.csv" {
		t.Fatalf("unexpected filename: %q", cfg.SampleSheet.Filename)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	if err := settings.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}

	def := settings.Default()
	if cfg.Project.IDPattern != def.Project.IDPattern {
		t.Fatalf("pattern drifted: %q", cfg.Project.IDPattern)
	}
	if cfg.SampleSheet.Filename != def.SampleSheet.Filename {
		t.Fatalf("sample sheet filename drifted: %q", cfg.SampleSheet.Filename)
	}
	if cfg.Submission != def.Submission {
		t.Fatalf("submission layout drifted: %+v", cfg.Submission)
	}
	if cfg.Staging != def.Staging {
		t.Fatalf("staging drifted: %+v", cfg.Staging)
	}
	for code, model := range def.Sequencers {
		if cfg.Sequencers[code] != model {
			t.Fatalf("catalog entry %s drifted: %q", code, cfg.Sequencers[code])
		}
	}
}
