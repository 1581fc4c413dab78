// Package generate runs the configuration pipeline end to end: project
// resolution, sample collection, fastq matching, the optional submission
// merge, and the final document write.
package generate

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"configmaker/internal/diagnostics"
	"configmaker/internal/fastq"
	"configmaker/internal/logging"
	"configmaker/internal/runconfig"
	"configmaker/internal/runfolder"
	"configmaker/internal/samplesheet"
	"configmaker/internal/settings"
	"configmaker/internal/submission"
)

// Request is one configuration run as asked for on the command line.
// Output of "-" streams the document to Stdout instead of a file.
type Request struct {
	Folders        []string
	ProjectID      string
	SampleSheet    string
	SubmissionForm string
	Organism       string
	Libprep        string
	Machine        string
	Stage          bool
	Output         string
	Stdout         io.Writer
}

// Result summarizes a finished run.
type Result struct {
	RunID        string
	ProjectID    string
	Folders      []string
	SampleSheets []string
	FormPath     string
	SampleIDs    []string
	ReadGeometry []int
	Machine      string
	FastqDir     string
	OutputPath   string
	Findings     []diagnostics.Finding
}

// Run executes every stage and writes the configuration document. The
// returned Result reflects what was actually produced, findings
// included.
func Run(cfg *settings.Settings, req Request, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	runID := uuid.NewString()
	log := logging.NewComponentLogger(logger, "generate").With(logging.String("run_id", runID))
	diag := diagnostics.NewCollector()

	resolution, err := runfolder.Resolve(req.Folders, req.ProjectID, cfg.ProjectPattern())
	if err != nil {
		return nil, err
	}
	log.Info("resolved project",
		logging.String("project_id", resolution.ProjectID),
		logging.Int("run_folders", len(resolution.Folders)))

	sheets, err := samplesheet.Locate(req.SampleSheet, resolution.Folders, cfg.SampleSheet.Filename)
	if err != nil {
		return nil, err
	}
	collection, err := samplesheet.Collect(sheets, resolution.ProjectID)
	if err != nil {
		return nil, err
	}
	log.Info("collected samples",
		logging.Int("samples", len(collection.SampleIDs)),
		logging.Int("sample_sheets", len(sheets)))

	samples, err := fastq.CollectSamples(collection.SampleIDs, resolution.ProjectDirs)
	if err != nil {
		return nil, err
	}

	formPath, err := submission.Locate(req.SubmissionForm, resolution.Folders, cfg.Submission.FormFilename)
	if err != nil {
		return nil, err
	}
	var form *submission.Table
	if formPath != "" {
		form, err = submission.Merge(formPath, collection.SampleIDs, cfg.Submission, diag)
		if err != nil {
			return nil, err
		}
		log.Info("merged submission form", logging.String("path", formPath))
	}

	geometry, err := runfolder.ReadGeometry(resolution.Folders)
	if err != nil {
		return nil, err
	}
	machine := req.Machine
	if machine == "" {
		machine = runfolder.Machine(resolution.Folders, cfg.Sequencers, diag)
	}

	doc := runconfig.Assemble(runconfig.Params{
		ProjectID:    resolution.ProjectID,
		Options:      collection.Options,
		Organism:     req.Organism,
		Libprep:      req.Libprep,
		ReadGeometry: geometry,
		Machine:      machine,
		Samples:      samples,
		Form:         form,
	})

	if req.Stage {
		ids := make([]string, len(doc.Samples))
		for i, s := range doc.Samples {
			ids[i] = s.ID
		}
		if err := fastq.Stage(cfg.Staging.FastqDir, ids, resolution.ProjectDirs); err != nil {
			return nil, err
		}
		doc.FastqDir = cfg.Staging.FastqDir
		log.Info("staged fastq files",
			logging.String("fastq_dir", cfg.Staging.FastqDir),
			logging.Int("samples", len(ids)))
	}

	result := &Result{
		RunID:        runID,
		ProjectID:    resolution.ProjectID,
		Folders:      resolution.Folders,
		SampleSheets: sheets,
		FormPath:     formPath,
		ReadGeometry: geometry,
		Machine:      machine,
		FastqDir:     doc.FastqDir,
		Findings:     diag.Findings(),
	}
	for _, s := range doc.Samples {
		result.SampleIDs = append(result.SampleIDs, s.ID)
	}

	if req.Output == "-" {
		out := req.Stdout
		if out == nil {
			out = os.Stdout
		}
		if err := doc.Write(out); err != nil {
			return nil, err
		}
	} else {
		if err := doc.WriteFile(req.Output); err != nil {
			return nil, err
		}
		result.OutputPath = req.Output
		log.Info("wrote configuration", logging.String("path", req.Output))
	}

	diag.Flush(log)
	return result, nil
}
