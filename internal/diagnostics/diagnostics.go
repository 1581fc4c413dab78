// Package diagnostics accumulates non-fatal findings observed while a
// configuration document is generated.
//
// Stages append findings to a Collector threaded through the run instead of
// logging through shared state; the caller flushes everything once after the
// document is written. Fatal errors never pass through the collector.
package diagnostics

import (
	"fmt"
	"log/slog"

	"configmaker/internal/logging"
)

// Stage names used in findings.
const (
	StageRunfolder   = "runfolder"
	StageSampleSheet = "samplesheet"
	StageFastq       = "fastq"
	StageSubmission  = "submission"
	StageAssemble    = "assemble"
)

// Finding codes.
const (
	CodeSheetOnlySamples    = "sheet_only_samples"
	CodeFormOnlySamples     = "form_only_samples"
	CodeMultipleSequencers  = "multiple_sequencers"
	CodeUnknownSequencer    = "unknown_sequencer"
	CodeMissingMachineToken = "missing_machine_token"
)

// Finding reports one non-fatal condition.
type Finding struct {
	Stage   string
	Code    string
	Message string
}

// Collector accumulates findings in observation order. A nil Collector
// discards everything, so optional call sites need no guard.
type Collector struct {
	findings []Finding
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Warn records a finding.
func (c *Collector) Warn(stage, code, message string) {
	if c == nil {
		return
	}
	c.findings = append(c.findings, Finding{Stage: stage, Code: code, Message: message})
}

// Warnf records a finding with a formatted message.
func (c *Collector) Warnf(stage, code, format string, args ...any) {
	if c == nil {
		return
	}
	c.Warn(stage, code, fmt.Sprintf(format, args...))
}

// Findings returns the recorded findings in observation order.
func (c *Collector) Findings() []Finding {
	if c == nil || len(c.findings) == 0 {
		return nil
	}
	out := make([]Finding, len(c.findings))
	copy(out, c.findings)
	return out
}

// Empty reports whether no findings were recorded.
func (c *Collector) Empty() bool {
	return c == nil || len(c.findings) == 0
}

// Flush logs every finding as a warning, in observation order.
func (c *Collector) Flush(logger *slog.Logger) {
	if c == nil || logger == nil {
		return
	}
	for _, f := range c.findings {
		logger.Warn(f.Message,
			logging.String("stage", f.Stage),
			logging.String("code", f.Code))
	}
}
