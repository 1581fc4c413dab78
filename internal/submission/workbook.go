package submission

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"configmaker/internal/settings"
)

const colSampleID = "Sample_ID"

// Header renames for the customer intake sheet. Keys are the form's
// wording, values the config field names.
var customerRenames = map[string]string{
	"Unique Sample ID":                           colSampleID,
	"External ID (optional reference sample ID)": "External_ID",
	"Sample Group (conditions to be compared)":   "Sample_Group",
	"Comments (optional info that does not fit in other columns)": "Customer_Comment",
	"Sample biosource (examples: celltype/tissue/FFPE)":           "Sample_Biosource",
	"Project ID": "Project_ID",
	"Sample type (e.g RNA or DNA or library)": "Sample_Type",
	"Index1_p7 (If dual indexed libraries are submitted indicate what index sequence is used P7)": "Index",
	"Index2_p5 (If libraries are submitted  indicate what index sequence is used P75)":            "Index2",
	"Plate location (if samples delivered in 96 well plates)":                                     "Plate",
	"Sample Buffer":         "Sample_Buffer",
	"Volume (ul)":           "Volume",
	"Quantification Method": "Quantification_Method",
	"Concentration (ng/ul)": "Concentration",
	"260/280 ratio":         "260/280",
	"260/230 ratio":         "260/230",
}

// Customer columns dropped after renaming. Their values are lab concerns
// or already carried by the sample sheet.
var customerDrops = map[string]struct{}{
	"Concentration":         {},
	"Index":                 {},
	"Index2":                {},
	"Sample_Type":           {},
	"Plate":                 {},
	"Sample_Buffer":         {},
	"Volume":                {},
	"Quantification_Method": {},
	"260/280":               {},
	"260/230":               {},
}

var labRenames = map[string]string{
	"Concentration (ng/ul)": "Concentration",
	"260/280 ratio":         "260/280",
	"260/230 ratio":         "260/230",
	"Comment":               "Lab_Comment",
}

var labDrops = map[string]struct{}{
	"Sample_Name": {},
	"Project ID":  {},
	"KIT":         {},
}

func readWorkbook(path string, layout settings.Submission) (customer, lab *Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open submission form %s: %w", path, err)
	}
	defer f.Close()

	customerRows, err := sheetRows(f, layout.CustomerSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("submission form %s: %w", path, err)
	}
	customer, err = buildTable(customerRows, layout.CustomerSkipRows, customerRenames, customerDrops, true)
	if err != nil {
		return nil, nil, fmt.Errorf("customer sheet of %s: %w", path, err)
	}

	labRows, err := sheetRows(f, layout.LabSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("submission form %s: %w", path, err)
	}
	lab, err = buildTable(labRows, 0, labRenames, labDrops, false)
	if err != nil {
		return nil, nil, fmt.Errorf("lab sheet of %s: %w", path, err)
	}
	return customer, lab, nil
}

func sheetRows(f *excelize.File, index int) ([][]string, error) {
	sheets := f.GetSheetList()
	if index < 0 || index >= len(sheets) {
		return nil, fmt.Errorf("%w: workbook has no sheet index %d", ErrMalformedWorkbook, index)
	}
	rows, err := f.GetRows(sheets[index])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[index], err)
	}
	return rows, nil
}

// buildTable turns raw worksheet rows into a Table. The header sits on
// rows[skip]; renames and drops apply after trimming the header cells.
// With headerRequired set a missing header or Sample_ID column is an
// error, otherwise a sheet without data rows passes as an empty table.
func buildTable(rows [][]string, skip int, renames map[string]string, drops map[string]struct{}, headerRequired bool) (*Table, error) {
	if len(rows) <= skip {
		if headerRequired {
			return nil, fmt.Errorf("%w: no header row", ErrMalformedWorkbook)
		}
		return newTable(nil), nil
	}

	header := rows[skip]
	names := make([]string, len(header))
	var columns []string
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if renamed, ok := renames[name]; ok {
			name = renamed
		}
		if name == "" {
			continue
		}
		if _, ok := drops[name]; ok {
			continue
		}
		if slices.Contains(columns, name) {
			continue
		}
		names[i] = name
		columns = append(columns, name)
	}

	data := rows[skip+1:]
	if headerRequired || len(data) > 0 {
		if !slices.Contains(columns, colSampleID) {
			return nil, fmt.Errorf("%w: no %s column", ErrMalformedWorkbook, colSampleID)
		}
	}

	table := newTable(columns)
	for _, cells := range data {
		row := make(map[string]string, len(columns))
		for i, name := range names {
			if name == "" {
				continue
			}
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		if row[colSampleID] == "" {
			continue
		}
		table.add(row[colSampleID], row)
	}
	return table, nil
}
