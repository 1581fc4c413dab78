package runfolder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// demuxStats models the slice of bcl2fastq's Stats.json the generator needs.
type demuxStats struct {
	ReadInfosForLanes []laneReadInfos `json:"ReadInfosForLanes"`
}

type laneReadInfos struct {
	ReadInfos []readInfo `json:"ReadInfos"`
}

type readInfo struct {
	NumCycles     int  `json:"NumCycles"`
	IsIndexedRead bool `json:"IsIndexedRead"`
}

// ReadGeometry derives the cycle counts of the non-indexed reads from each
// run folder's Stats/Stats.json and requires every folder to agree. The
// counts keep the order the stats file lists them in.
func ReadGeometry(folders []string) ([]int, error) {
	var geometry []int
	var descriptor string
	for i, folder := range folders {
		current, err := readFolderGeometry(folder)
		if err != nil {
			return nil, err
		}
		desc := GeometryDescriptor(current)
		if i == 0 {
			geometry = current
			descriptor = desc
			continue
		}
		if desc != descriptor {
			return nil, fmt.Errorf("%w: %s reports %s, %s reports %s; check Stats.json", ErrReadGeometryMismatch, filepath.Base(folders[0]), descriptor, filepath.Base(folder), desc)
		}
	}
	return geometry, nil
}

// GeometryDescriptor renders cycle counts as a colon-joined string, the form
// run folders are compared by.
func GeometryDescriptor(geometry []int) string {
	parts := make([]string, len(geometry))
	for i, cycles := range geometry {
		parts[i] = strconv.Itoa(cycles)
	}
	return strings.Join(parts, ":")
}

func readFolderGeometry(folder string) ([]int, error) {
	path := filepath.Join(folder, "Stats", "Stats.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStats, path, err)
	}
	var stats demuxStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStats, path, err)
	}
	if len(stats.ReadInfosForLanes) == 0 {
		return nil, fmt.Errorf("%w: %s: no lane read info", ErrMalformedStats, path)
	}
	var geometry []int
	for _, read := range stats.ReadInfosForLanes[0].ReadInfos {
		if !read.IsIndexedRead {
			geometry = append(geometry, read.NumCycles)
		}
	}
	return geometry, nil
}
