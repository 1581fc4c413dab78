package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func newSequencersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sequencers",
		Short: "List the active sequencer catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			codes := make([]string, 0, len(cfg.Sequencers))
			for code := range cfg.Sequencers {
				codes = append(codes, code)
			}
			slices.Sort(codes)

			rows := make([][]string, 0, len(codes))
			for _, code := range codes {
				rows = append(rows, []string{code, cfg.Sequencers[code]})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Code", "Model"}, rows, nil, shouldStyle(out)))
			return nil
		},
	}
}
