package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var settingsFlag string
	var logLevelFlag string
	var logFormatFlag string
	var quietFlag bool

	ctx := newCommandContext(&settingsFlag, &logLevelFlag, &logFormatFlag, &quietFlag)

	var flags generateFlags

	rootCmd := &cobra.Command{
		Use:           "configmaker [flags] RUNFOLDER...",
		Short:         "Generate pipeline configuration from sequencing run folders",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipSettings(cmd) {
				return nil
			}
			_, err := ctx.ensureSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runGenerate(ctx, cmd, args, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Facility settings file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress the run summary")

	rootCmd.Flags().StringVarP(&flags.projectID, "project-id", "p", "", "Project identifier")
	rootCmd.Flags().StringVarP(&flags.sampleSheet, "sample-sheet", "s", "", "Sample sheet path")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "config.yaml", "Output path for the configuration document (- for stdout)")
	rootCmd.Flags().StringVarP(&flags.submissionForm, "sample-submission-form", "S", "", "Sample submission form path")
	rootCmd.Flags().StringVar(&flags.organism, "organism", "", "Organism recorded in the configuration")
	rootCmd.Flags().StringVar(&flags.libkit, "libkit", "", "Library preparation kit recorded in the configuration")
	rootCmd.Flags().StringVar(&flags.machine, "machine", "", "Sequencing machine override")
	rootCmd.Flags().BoolVar(&flags.createFastqDir, "create-fastq-dir", false, "Stage fastq symlinks and record the staging directory")

	rootCmd.AddCommand(newSettingsCommand(ctx))
	rootCmd.AddCommand(newSequencersCommand(ctx))

	return rootCmd
}
