// Package submission reads the sample submission workbook that
// accompanies a sequencing run and merges its customer and lab sheets
// into a single table of per-sample metadata.
package submission

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"configmaker/internal/diagnostics"
	"configmaker/internal/settings"
)

var (
	// ErrMissingSubmissionForm reports that a required submission form was
	// not given or that the given path does not exist.
	ErrMissingSubmissionForm = errors.New("submission form not found")

	// ErrMalformedWorkbook reports a workbook whose sheets do not follow
	// the submission form layout.
	ErrMalformedWorkbook = errors.New("malformed submission form")
)

// Table holds one worksheet, or the merge of both, after header renaming
// and column filtering. Rows are keyed by sample ID with IDs preserving
// sheet order; a duplicated sample ID keeps the last row seen.
type Table struct {
	Columns []string
	IDs     []string
	Rows    map[string]map[string]string
}

func newTable(columns []string) *Table {
	return &Table{Columns: columns, Rows: make(map[string]map[string]string)}
}

func (t *Table) add(id string, row map[string]string) {
	if _, ok := t.Rows[id]; !ok {
		t.IDs = append(t.IDs, id)
	}
	t.Rows[id] = row
}

// Locate decides which submission form to use. An explicit path must
// exist. Without one a single run folder is searched for filename, and
// an empty path is returned when the folder has none. Multiple run
// folders always require an explicit path.
func Locate(explicit string, folders []string, filename string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrMissingSubmissionForm, explicit)
		}
		return explicit, nil
	}
	if len(folders) != 1 {
		return "", fmt.Errorf("%w: --sample-submission-form is required with multiple run folders", ErrMissingSubmissionForm)
	}
	path := filepath.Join(folders[0], filename)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return "", nil
	}
	return path, nil
}

// Merge reads the workbook at path and joins its customer and lab sheets
// on sample ID. Sample IDs present in only one of sampleIDs and the
// customer sheet are reported through diag, in both directions. An empty
// lab sheet leaves the customer sheet as the result.
func Merge(path string, sampleIDs []string, layout settings.Submission, diag *diagnostics.Collector) (*Table, error) {
	customer, lab, err := readWorkbook(path, layout)
	if err != nil {
		return nil, err
	}

	auditSampleIDs(sampleIDs, customer, diag)

	if len(lab.IDs) == 0 {
		return customer, nil
	}
	return join(customer, lab), nil
}

func auditSampleIDs(sampleIDs []string, customer *Table, diag *diagnostics.Collector) {
	var sheetOnly []string
	for _, id := range sampleIDs {
		if _, ok := customer.Rows[id]; !ok {
			sheetOnly = append(sheetOnly, id)
		}
	}
	if len(sheetOnly) > 0 {
		diag.Warnf(diagnostics.StageSubmission, diagnostics.CodeSheetOnlySamples,
			"samples %s are in the sample sheet but not in the submission form", strings.Join(sheetOnly, ", "))
	}

	sheet := make(map[string]struct{}, len(sampleIDs))
	for _, id := range sampleIDs {
		sheet[id] = struct{}{}
	}
	var formOnly []string
	for _, id := range customer.IDs {
		if _, ok := sheet[id]; !ok {
			formOnly = append(formOnly, id)
		}
	}
	if len(formOnly) > 0 {
		diag.Warnf(diagnostics.StageSubmission, diagnostics.CodeFormOnlySamples,
			"samples %s are in the submission form but not in the sample sheet", strings.Join(formOnly, ", "))
	}
}

// join keeps the customer rows whose sample ID also appears in the lab
// sheet and appends the lab columns to them.
func join(customer, lab *Table) *Table {
	columns := slices.Clone(customer.Columns)
	for _, col := range lab.Columns {
		if !slices.Contains(columns, col) {
			columns = append(columns, col)
		}
	}

	merged := newTable(columns)
	for _, id := range customer.IDs {
		labRow, ok := lab.Rows[id]
		if !ok {
			continue
		}
		row := maps.Clone(customer.Rows[id])
		for key, value := range labRow {
			if key != colSampleID {
				row[key] = value
			}
		}
		merged.add(id, row)
	}
	return merged
}
