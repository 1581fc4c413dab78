package settings

import (
	"errors"
	"fmt"
)

// Validate ensures the settings are usable.
func (s *Settings) Validate() error {
	if s.projectPattern == nil {
		return errors.New("project.id_pattern must be set")
	}
	if err := ensureNonNegativeMap(map[string]int{
		"submission.customer_sheet":     s.Submission.CustomerSheet,
		"submission.customer_skip_rows": s.Submission.CustomerSkipRows,
		"submission.lab_sheet":          s.Submission.LabSheet,
	}); err != nil {
		return err
	}
	if s.SampleSheet.Filename == "" {
		return errors.New("sample_sheet.filename must be set")
	}
	if s.Submission.FormFilename == "" {
		return errors.New("submission.form_filename must be set")
	}
	return nil
}

func ensureNonNegativeMap(values map[string]int) error {
	for key, value := range values {
		if value < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}
	return nil
}
