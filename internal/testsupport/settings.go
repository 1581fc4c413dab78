// Package testsupport builds settings and on-disk sequencing run
// fixtures for tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"configmaker/internal/settings"
)

// SettingsOption customizes the generated test settings.
type SettingsOption func(*settings.Settings)

// WithFastqDir overrides the staging directory on the test settings.
func WithFastqDir(dir string) SettingsOption {
	return func(s *settings.Settings) {
		s.Staging.FastqDir = dir
	}
}

// WithSequencer adds a machine code to the sequencer catalog.
func WithSequencer(code, model string) SettingsOption {
	return func(s *settings.Settings) {
		s.Sequencers[code] = model
	}
}

// NewSettings produces validated default settings that never touch the
// invoking user's configuration, with the staging directory pointed at a
// unique temp directory.
func NewSettings(t testing.TB, opts ...SettingsOption) *settings.Settings {
	t.Helper()

	base := t.TempDir()
	t.Setenv(settings.EnvSettingsPath, filepath.Join(base, "absent-settings.toml"))

	cfg, _, _, err := settings.Load("")
	if err != nil {
		t.Fatalf("load default settings: %v", err)
	}
	cfg.Staging.FastqDir = filepath.Join(base, "fastq")

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
