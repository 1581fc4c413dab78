package main

import (
	"github.com/spf13/cobra"

	"configmaker/internal/generate"
)

type generateFlags struct {
	projectID      string
	sampleSheet    string
	output         string
	submissionForm string
	organism       string
	libkit         string
	machine        string
	createFastqDir bool
}

func runGenerate(ctx *commandContext, cmd *cobra.Command, folders []string, flags generateFlags) error {
	cfg, err := ctx.ensureSettings()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	res, err := generate.Run(cfg, generate.Request{
		Folders:        folders,
		ProjectID:      flags.projectID,
		SampleSheet:    flags.sampleSheet,
		SubmissionForm: flags.submissionForm,
		Organism:       flags.organism,
		Libprep:        flags.libkit,
		Machine:        flags.machine,
		Stage:          flags.createFastqDir,
		Output:         flags.output,
		Stdout:         cmd.OutOrStdout(),
	}, logger)
	if err != nil {
		return err
	}

	if ctx.quiet() || flags.output == "-" {
		return nil
	}
	writeSummary(cmd.OutOrStdout(), res)
	return nil
}
