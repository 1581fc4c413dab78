package testsupport

import (
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

// CustomerHeader is the customer intake sheet header of the submission
// form, in the form's wording.
var CustomerHeader = []any{
	"Unique Sample ID",
	"External ID (optional reference sample ID)",
	"Sample Group (conditions to be compared)",
	"Project ID",
	"Sample biosource (examples: celltype/tissue/FFPE)",
	"Sample type (e.g RNA or DNA or library)",
	"Index1_p7 (If dual indexed libraries are submitted indicate what index sequence is used P7)",
	"Index2_p5 (If libraries are submitted  indicate what index sequence is used P75)",
	"Plate location (if samples delivered in 96 well plates)",
	"Sample Buffer",
	"Volume (ul)",
	"Quantification Method",
	"Concentration (ng/ul)",
	"260/280 ratio",
	"260/230 ratio",
	"Comments (optional info that does not fit in other columns)",
}

// LabHeader is the lab QC sheet header of the submission form.
var LabHeader = []any{
	"Sample_ID",
	"Sample_Name",
	"Project ID",
	"KIT",
	"Concentration (ng/ul)",
	"260/280 ratio",
	"260/230 ratio",
	"Comment",
}

// CustomerRow fills one customer intake row matching CustomerHeader.
func CustomerRow(id, external, group string) []any {
	return []any{id, external, group, "GCF-2020-123", "liver", "RNA", "ATTACTCG", "AGGCTATA", "A1", "EB", "30", "Qubit", "25.5", "1.9", "2.1", "fragile sample"}
}

// LabRow fills one lab QC row matching LabHeader.
func LabRow(id, concentration, comment string) []any {
	return []any{id, id + "-lib", "GCF-2020-123", "TruSeq", concentration, "1.8", "2.0", comment}
}

// WriteWorkbook writes a workbook shaped like the submission form to
// path: customer intake on the first sheet below 14 intro rows, lab QC
// on the third sheet. Row slices include the header rows.
func WriteWorkbook(t testing.TB, path string, customer, lab [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for _, name := range []string{"Instructions", "Lab"} {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet %s: %v", name, err)
		}
	}
	for i := 1; i <= 14; i++ {
		if err := f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i), &[]any{fmt.Sprintf("intro row %d", i)}); err != nil {
			t.Fatalf("write intro row: %v", err)
		}
	}
	for i, row := range customer {
		if err := f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", 15+i), &row); err != nil {
			t.Fatalf("write customer row: %v", err)
		}
	}
	for i, row := range lab {
		if err := f.SetSheetRow("Lab", fmt.Sprintf("A%d", 1+i), &row); err != nil {
			t.Fatalf("write lab row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}
