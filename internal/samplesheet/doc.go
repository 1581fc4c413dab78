// Package samplesheet locates and parses sequencer sample sheets.
//
// A sheet is scanned line by line: key/value pairs following a
// [CustomOptions] marker are accumulated until the [Data] marker, after
// which the remainder of the file is a CSV table with a header row. Only the
// Sample_ID and Sample_Project columns of the table are consumed. Files may
// carry a UTF-8 byte order mark and CRLF line endings.
//
// Custom option values equal to "true" (case-insensitively) become boolean
// true; every other value stays a string, including "false". Downstream
// consumers rely on that asymmetry.
package samplesheet
