package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"configmaker/internal/generate"
)

// writeSummary renders the run tables shown after a successful generation.
func writeSummary(out io.Writer, res *generate.Result) {
	styled := shouldStyle(out)

	rows := [][]string{
		{"Project", res.ProjectID},
		{"Run folders", strings.Join(res.Folders, ", ")},
		{"Sample sheets", strings.Join(res.SampleSheets, ", ")},
		{"Submission form", valueOrDash(res.FormPath)},
		{"Samples", strconv.Itoa(len(res.SampleIDs))},
		{"Read geometry", formatGeometry(res.ReadGeometry)},
		{"Machine", valueOrDash(res.Machine)},
		{"Fastq dir", valueOrDash(res.FastqDir)},
		{"Output", res.OutputPath},
		{"Warnings", strconv.Itoa(len(res.Findings))},
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil, styled))

	if len(res.Findings) == 0 {
		return
	}
	findingRows := make([][]string, 0, len(res.Findings))
	for _, f := range res.Findings {
		findingRows = append(findingRows, []string{f.Stage, f.Code, f.Message})
	}
	fmt.Fprintln(out, renderTable([]string{"Stage", "Code", "Message"}, findingRows, nil, styled))
}

func formatGeometry(geometry []int) string {
	if len(geometry) == 0 {
		return "-"
	}
	parts := make([]string, len(geometry))
	for i, cycles := range geometry {
		parts[i] = strconv.Itoa(cycles)
	}
	return strings.Join(parts, ", ")
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
