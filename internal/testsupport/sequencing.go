package testsupport

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// Read is one entry of a demultiplexing stats read list.
type Read struct {
	Cycles  int
	Indexed bool
}

// WriteStats writes Stats/Stats.json under folder with a single lane
// holding the given reads.
func WriteStats(t testing.TB, folder string, reads ...Read) {
	t.Helper()

	type readInfo struct {
		Number        int  `json:"Number"`
		NumCycles     int  `json:"NumCycles"`
		IsIndexedRead bool `json:"IsIndexedRead"`
	}
	type lane struct {
		LaneNumber int        `json:"LaneNumber"`
		ReadInfos  []readInfo `json:"ReadInfos"`
	}

	infos := make([]readInfo, 0, len(reads))
	for i, r := range reads {
		infos = append(infos, readInfo{Number: i + 1, NumCycles: r.Cycles, IsIndexedRead: r.Indexed})
	}
	stats := struct {
		ReadInfosForLanes []lane `json:"ReadInfosForLanes"`
	}{
		ReadInfosForLanes: []lane{{LaneNumber: 1, ReadInfos: infos}},
	}

	data, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal stats: %v", err)
	}
	WriteFile(t, filepath.Join(folder, "Stats", "Stats.json"), string(data))
}

// PairedEndReads is the usual two data reads around one index read.
func PairedEndReads(cycles int) []Read {
	return []Read{
		{Cycles: cycles},
		{Cycles: 8, Indexed: true},
		{Cycles: cycles},
	}
}

// SampleSheet renders IEM sample sheet text for one project with the
// given custom options and samples.
func SampleSheet(projectID string, options [][2]string, sampleIDs ...string) string {
	var b strings.Builder
	b.WriteString("[Header],,\n")
	b.WriteString("IEMFileVersion,5,\n")
	if len(options) > 0 {
		b.WriteString("[CustomOptions],,\n")
		for _, opt := range options {
			fmt.Fprintf(&b, "%s,%s,\n", opt[0], opt[1])
		}
	}
	b.WriteString("[Data],,\n")
	b.WriteString("Sample_ID,Sample_Name,Sample_Project\n")
	for _, id := range sampleIDs {
		fmt.Fprintf(&b, "%s,%s-lib,%s\n", id, id, projectID)
	}
	return b.String()
}
