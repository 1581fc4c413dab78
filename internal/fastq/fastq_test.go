package fastq_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"configmaker/internal/fastq"
)

const runName = "200602_NB501038_0123_AHVNJTBGXF"

func writeFastq(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("fastq"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newProjectDir lays out a run folder with a project directory holding a
// small mix of fastq files and returns the project directory path.
func newProjectDir(t *testing.T, root string) string {
	t.Helper()
	proj := filepath.Join(root, runName, "GCF-2020-123")
	writeFastq(t, filepath.Join(proj, "S1_S1_L001_R1_001.fastq.gz"))
	writeFastq(t, filepath.Join(proj, "S1_S1_L001_R2_001.fastq.gz"))
	writeFastq(t, filepath.Join(proj, "lane2", "S1_S1_L002_R1_001.fastq.gz"))
	writeFastq(t, filepath.Join(proj, "lane2", "S1_S1_L002_R2_001.fastq.gz"))
	writeFastq(t, filepath.Join(proj, "S2_S2_L001_R1_001.fastq.gz"))
	writeFastq(t, filepath.Join(proj, "S10_S10_L001_R1_001.fastq.gz"))
	return proj
}

func TestMatchRelativePaths(t *testing.T) {
	proj := newProjectDir(t, t.TempDir())
	ix, err := fastq.NewIndex(proj)
	if err != nil {
		t.Fatalf("NewIndex returned error: %v", err)
	}

	files, err := ix.Match("S1", true)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	wantR1 := []string{
		filepath.Join(runName, "GCF-2020-123", "S1_S1_L001_R1_001.fastq.gz"),
		filepath.Join(runName, "GCF-2020-123", "lane2", "S1_S1_L002_R1_001.fastq.gz"),
	}
	if len(files.R1) != len(wantR1) {
		t.Fatalf("R1 = %v, want %v", files.R1, wantR1)
	}
	for i, want := range wantR1 {
		if files.R1[i] != want {
			t.Errorf("R1[%d] = %q, want %q", i, files.R1[i], want)
		}
	}
	if len(files.R2) != 2 {
		t.Fatalf("R2 = %v, want two entries", files.R2)
	}
	for _, p := range append(files.R1, files.R2...) {
		if !strings.HasPrefix(p, runName+string(filepath.Separator)) {
			t.Errorf("path %q does not start with the run folder name", p)
		}
	}
}

func TestMatchAbsolutePaths(t *testing.T) {
	proj := newProjectDir(t, t.TempDir())
	ix, err := fastq.NewIndex(proj)
	if err != nil {
		t.Fatalf("NewIndex returned error: %v", err)
	}

	files, err := ix.Match("S2", false)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	want := filepath.Join(proj, "S2_S2_L001_R1_001.fastq.gz")
	if len(files.R1) != 1 || files.R1[0] != want {
		t.Fatalf("R1 = %v, want [%s]", files.R1, want)
	}
	if len(files.R2) != 0 {
		t.Fatalf("R2 = %v, want empty", files.R2)
	}
}

func TestMatchRequiresSampleSeparator(t *testing.T) {
	proj := newProjectDir(t, t.TempDir())
	ix, err := fastq.NewIndex(proj)
	if err != nil {
		t.Fatalf("NewIndex returned error: %v", err)
	}

	files, err := ix.Match("S1", true)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	for _, p := range files.R1 {
		if strings.Contains(p, "S10_") {
			t.Errorf("S1 match picked up S10 file %q", p)
		}
	}
}

func TestCollectSamples(t *testing.T) {
	proj := newProjectDir(t, t.TempDir())

	samples, err := fastq.CollectSamples([]string{"S1", "S2", "S3"}, []string{proj})
	if err != nil {
		t.Fatalf("CollectSamples returned error: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	if samples[0].ID != "S1" || !samples[0].Paired {
		t.Errorf("S1 = %+v, want paired", samples[0])
	}
	if samples[1].ID != "S2" || samples[1].Paired {
		t.Errorf("S2 = %+v, want unpaired", samples[1])
	}
	if len(samples[1].Files.R2) != 0 {
		t.Errorf("S2 R2 = %v, want empty", samples[1].Files.R2)
	}
	if samples[2].ID != "S3" || samples[2].Paired || len(samples[2].Files.R1) != 0 {
		t.Errorf("S3 = %+v, want no files", samples[2])
	}
}

func TestCollectSamplesAcrossProjectDirs(t *testing.T) {
	root := t.TempDir()
	projA := filepath.Join(root, "200601_M02675_0088_000000000-A1B2C", "GCF-2020-123")
	writeFastq(t, filepath.Join(projA, "S1_S1_L001_R1_001.fastq.gz"))
	projB := filepath.Join(root, "200602_M02675_0089_000000000-D3E4F", "GCF-2020-123")
	writeFastq(t, filepath.Join(projB, "S1_S1_L001_R1_001.fastq.gz"))
	writeFastq(t, filepath.Join(projB, "S1_S1_L001_R2_001.fastq.gz"))

	samples, err := fastq.CollectSamples([]string{"S1"}, []string{projA, projB})
	if err != nil {
		t.Fatalf("CollectSamples returned error: %v", err)
	}
	got := samples[0]
	if len(got.Files.R1) != 2 {
		t.Fatalf("R1 = %v, want two entries", got.Files.R1)
	}
	if !strings.HasPrefix(got.Files.R1[0], "200601_") {
		t.Errorf("R1[0] = %q, want the first run folder first", got.Files.R1[0])
	}
	if !strings.HasPrefix(got.Files.R1[1], "200602_") {
		t.Errorf("R1[1] = %q, want the second run folder last", got.Files.R1[1])
	}
	if !got.Paired {
		t.Error("sample with an R2 file in one folder should be paired")
	}
}

func TestNewIndexMissingDir(t *testing.T) {
	_, err := fastq.NewIndex(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing project directory")
	}
}
