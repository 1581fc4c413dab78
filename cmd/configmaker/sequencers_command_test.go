package main

import (
	"path/filepath"
	"testing"

	"configmaker/internal/testsupport"
)

func TestSequencersListsCatalog(t *testing.T) {
	isolateSettings(t)

	out, _, err := runCLI(t, "sequencers")
	if err != nil {
		t.Fatalf("sequencers: %v", err)
	}
	requireContains(t, out, "NB501038")
	requireContains(t, out, "NextSeq 500")
}

func TestSequencersExtendsCatalogFromSettings(t *testing.T) {
	isolateSettings(t)
	settingsPath := filepath.Join(t.TempDir(), "settings.toml")
	testsupport.WriteFile(t, settingsPath, "[sequencers]\nLH00123 = \"NovaSeq X Plus\"\n")

	out, _, err := runCLI(t, "sequencers", "--settings", settingsPath)
	if err != nil {
		t.Fatalf("sequencers: %v", err)
	}
	requireContains(t, out, "NovaSeq X Plus")
	requireContains(t, out, "NextSeq 500")
}
