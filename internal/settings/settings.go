package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_settings.toml
var sampleSettings string

// EnvSettingsPath names the environment variable consulted when no
// --settings flag is given.
const EnvSettingsPath = "CONFIGMAKER_SETTINGS"

// Project contains project identity configuration.
type Project struct {
	// IDPattern is the anchored regular expression a project ID must match.
	IDPattern string `toml:"id_pattern"`
}

// SampleSheet contains sample sheet discovery configuration.
type SampleSheet struct {
	Filename string `toml:"filename"`
}

// Submission contains submission form discovery and workbook layout.
type Submission struct {
	FormFilename     string `toml:"form_filename"`
	CustomerSheet    int    `toml:"customer_sheet"`
	CustomerSkipRows int    `toml:"customer_skip_rows"`
	LabSheet         int    `toml:"lab_sheet"`
}

// Staging contains FASTQ staging configuration.
type Staging struct {
	// FastqDir is resolved against the invocation directory, not expanded,
	// because the generated document records it verbatim.
	FastqDir string `toml:"fastq_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Settings encapsulates all configuration values for configmaker.
//
// Sections:
//   - Project: the facility project ID pattern
//   - Sequencers: machine code to sequencer model catalog; file entries
//     extend and override the built-in catalog
//   - SampleSheet: sample sheet filename looked up per run folder
//   - Submission: submission form filename and workbook sheet layout
//   - Staging: destination directory for staged FASTQ symlinks
//   - Logging: log format and level defaults
type Settings struct {
	Project     Project           `toml:"project"`
	Sequencers  map[string]string `toml:"sequencers"`
	SampleSheet SampleSheet       `toml:"sample_sheet"`
	Submission  Submission        `toml:"submission"`
	Staging     Staging           `toml:"staging"`
	Logging     Logging           `toml:"logging"`

	projectPattern *regexp.Regexp
}

// DefaultSettingsPath returns the absolute path to the default settings file location.
func DefaultSettingsPath() (string, error) {
	return expandPath("~/.config/configmaker/settings.toml")
}

// Load locates, parses, and validates a settings file. The returned settings
// have all path fields expanded and the project pattern compiled.
func Load(path string) (*Settings, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveSettingsPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open settings: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse settings: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveSettingsPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvSettingsPath))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat settings: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultSettingsPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("configmaker.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ProjectPattern returns the compiled project ID pattern. It is non-nil for
// any Settings produced by Load.
func (s *Settings) ProjectPattern() *regexp.Regexp {
	return s.projectPattern
}

// SequencerModel maps a machine code to its sequencer model name. Unknown
// codes map to the empty string.
func (s *Settings) SequencerModel(code string) string {
	return s.Sequencers[code]
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample settings file to the specified location.
func CreateSample(path string) error {
	sample := sampleSettings

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}
