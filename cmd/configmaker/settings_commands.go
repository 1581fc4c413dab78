package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"configmaker/internal/settings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Facility settings utilities",
	}

	settingsCmd.AddCommand(newSettingsInitCommand())
	settingsCmd.AddCommand(newSettingsShowCommand(ctx))
	settingsCmd.AddCommand(newSettingsValidateCommand(ctx))

	return settingsCmd
}

func newSettingsInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample settings file",
		Annotations: map[string]string{"skipSettingsLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := settings.DefaultSettingsPath()
				if err != nil {
					return fmt.Errorf("determine default settings path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := settings.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create settings directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := settings.CreateSample(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample settings to %s\n", target)
			fmt.Fprintln(out, "Edit the file to match the facility sequencer catalog and staging layout.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing settings if present")
	return cmd
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			rows := [][]string{
				{"Settings path", ctx.settingsPath},
				{"Settings file present", yesNo(ctx.settingsExists)},
				{"Project ID pattern", cfg.Project.IDPattern},
				{"Sample sheet filename", cfg.SampleSheet.Filename},
				{"Submission form filename", cfg.Submission.FormFilename},
				{"Customer sheet", strconv.Itoa(cfg.Submission.CustomerSheet)},
				{"Customer rows skipped", strconv.Itoa(cfg.Submission.CustomerSkipRows)},
				{"Lab sheet", strconv.Itoa(cfg.Submission.LabSheet)},
				{"Staging fastq dir", cfg.Staging.FastqDir},
				{"Log format", cfg.Logging.Format},
				{"Log level", cfg.Logging.Level},
				{"Sequencers", strconv.Itoa(len(cfg.Sequencers))},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil, shouldStyle(out)))
			return nil
		},
	}
}

func newSettingsValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureSettings()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings path: %s\n", ctx.settingsPath)
			if !ctx.settingsExists {
				fmt.Fprintln(out, "Settings file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Settings valid")
			return nil
		},
	}
}
