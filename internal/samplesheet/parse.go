package samplesheet

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseFile reads one sample sheet from disk.
func ParseFile(path string) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample sheet: %w", err)
	}
	defer file.Close()

	decoded := transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	return parse(bufio.NewReader(decoded), path)
}

func parse(br *bufio.Reader, path string) (*Sheet, error) {
	sheet := &Sheet{Path: path, Options: make(map[string]any)}
	inOptions := false
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read sample sheet %s: %w", path, err)
		}
		atEOF := errors.Is(err, io.EOF)
		if atEOF && line == "" {
			return nil, fmt.Errorf("%w: no [Data] section in %s", ErrMalformedSampleSheet, path)
		}

		switch {
		case strings.HasPrefix(line, "[Data]"):
			rows, err := decodeData(br, path)
			if err != nil {
				return nil, err
			}
			sheet.Rows = rows
			return sheet, nil
		case strings.HasPrefix(line, "[CustomOptions]"):
			inOptions = true
		case inOptions:
			if err := parseOption(sheet.Options, line, path); err != nil {
				return nil, err
			}
		}

		if atEOF {
			return nil, fmt.Errorf("%w: no [Data] section in %s", ErrMalformedSampleSheet, path)
		}
	}
}

func parseOption(options map[string]any, line, path string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return fmt.Errorf("%w: custom option line %q has no value in %s", ErrMalformedSampleSheet, strings.TrimSpace(line), path)
	}
	key := strings.TrimRight(fields[0], " \t\r\n")
	value := strings.TrimRight(fields[1], " \t\r\n")
	if strings.EqualFold(value, "true") {
		options[key] = true
	} else {
		options[key] = value
	}
	return nil
}

func decodeData(br *bufio.Reader, path string) ([]*Row, error) {
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read sample sheet %s: %w", path, err)
	}
	if strings.TrimSpace(header) == "" {
		return nil, fmt.Errorf("%w: empty [Data] section in %s", ErrMalformedSampleSheet, path)
	}

	columns, err := csv.NewReader(strings.NewReader(header)).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: [Data] header in %s: %v", ErrMalformedSampleSheet, path, err)
	}
	for i, column := range columns {
		columns[i] = strings.TrimSpace(column)
	}
	for _, required := range []string{"Sample_ID", "Sample_Project"} {
		if !slices.Contains(columns, required) {
			return nil, fmt.Errorf("%w: [Data] header in %s is missing column %s", ErrMalformedSampleSheet, path, required)
		}
	}

	var rebuilt strings.Builder
	headerWriter := csv.NewWriter(&rebuilt)
	if err := headerWriter.Write(columns); err != nil {
		return nil, fmt.Errorf("rebuild [Data] header: %w", err)
	}
	headerWriter.Flush()

	reader := csv.NewReader(io.MultiReader(strings.NewReader(rebuilt.String()), br))
	reader.LazyQuotes = true

	var rows []*Row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("%w: [Data] table in %s: %v", ErrMalformedSampleSheet, path, err)
	}
	return rows, nil
}
