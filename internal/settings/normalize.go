package settings

import (
	"fmt"
	"regexp"
	"strings"
)

func (s *Settings) normalize() error {
	if err := s.normalizeProject(); err != nil {
		return err
	}
	s.normalizeSequencers()
	s.normalizeDiscovery()
	s.normalizeLogging()
	return nil
}

func (s *Settings) normalizeProject() error {
	s.Project.IDPattern = strings.TrimSpace(s.Project.IDPattern)
	if s.Project.IDPattern == "" {
		s.Project.IDPattern = defaultProjectIDPattern
	}
	compiled, err := regexp.Compile(s.Project.IDPattern)
	if err != nil {
		return fmt.Errorf("project.id_pattern: %w", err)
	}
	s.projectPattern = compiled
	return nil
}

func (s *Settings) normalizeSequencers() {
	if len(s.Sequencers) == 0 {
		s.Sequencers = Default().Sequencers
		return
	}
	normalized := make(map[string]string, len(s.Sequencers))
	for code, model := range s.Sequencers {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		normalized[code] = strings.TrimSpace(model)
	}
	s.Sequencers = normalized
}

func (s *Settings) normalizeDiscovery() {
	s.SampleSheet.Filename = strings.TrimSpace(s.SampleSheet.Filename)
	if s.SampleSheet.Filename == "" {
		s.SampleSheet.Filename = defaultSampleSheetFilename
	}
	s.Submission.FormFilename = strings.TrimSpace(s.Submission.FormFilename)
	if s.Submission.FormFilename == "" {
		s.Submission.FormFilename = defaultSubmissionFormFilename
	}
	s.Staging.FastqDir = strings.TrimSpace(s.Staging.FastqDir)
	if s.Staging.FastqDir == "" {
		s.Staging.FastqDir = defaultFastqDir
	}
}

func (s *Settings) normalizeLogging() {
	s.Logging.Format = strings.ToLower(strings.TrimSpace(s.Logging.Format))
	switch s.Logging.Format {
	case "", "console":
		s.Logging.Format = "console"
	case "json":
	default:
		s.Logging.Format = "console"
	}
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
	if s.Logging.Level == "" {
		s.Logging.Level = defaultLogLevel
	}
}
