package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"configmaker/internal/settings"
	"configmaker/internal/testsupport"
)

const (
	testRunFolder = "200602_NB501038_0123_AHVNJTBGXF"
	testProjectID = "GCF-2020-123"
)

// isolateSettings points settings resolution at a path that does not exist
// so the compiled defaults are used regardless of the host machine.
func isolateSettings(t *testing.T) {
	t.Helper()
	t.Setenv(settings.EnvSettingsPath, filepath.Join(t.TempDir(), "absent-settings.toml"))
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// a nil slice would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// newRunFolder builds a run folder with paired fastq files, read stats, a
// sample sheet, and a submission form for the given samples.
func newRunFolder(t *testing.T, root string, samples ...string) string {
	t.Helper()
	folder := filepath.Join(root, testRunFolder)
	proj := filepath.Join(folder, testProjectID)
	for _, id := range samples {
		testsupport.WriteFastq(t, filepath.Join(proj, id+"_"+id+"_L001_R1_001.fastq.gz"))
		testsupport.WriteFastq(t, filepath.Join(proj, id+"_"+id+"_L001_R2_001.fastq.gz"))
	}
	testsupport.WriteStats(t, folder, testsupport.PairedEndReads(75)...)
	options := [][2]string{{"Organism", "homo sapiens"}, {"Libprep", "TruSeq Stranded mRNA"}}
	testsupport.WriteFile(t, filepath.Join(folder, "SampleSheet.csv"),
		testsupport.SampleSheet(testProjectID, options, samples...))
	writeForm(t, filepath.Join(folder, "Sample-Submission-Form.xlsx"), samples...)
	return folder
}

func writeForm(t *testing.T, path string, ids ...string) {
	t.Helper()
	customer := [][]any{testsupport.CustomerHeader}
	lab := [][]any{testsupport.LabHeader}
	for _, id := range ids {
		customer = append(customer, testsupport.CustomerRow(id, "ext-"+id, "group"))
		lab = append(lab, testsupport.LabRow(id, "12.5", ""))
	}
	testsupport.WriteWorkbook(t, path, customer, lab)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
