package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatcost-ai/chatcost/pkg/export"
	"github.com/chatcost-ai/chatcost/pkg/scenario"
)

func newExportCmd() *cobra.Command {
	var (
		configPath string
		output     string
		flags      inputFlags
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the scenario table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			snap, err := flags.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			rows := scenario.BuildTable(scenario.DefaultSources(), snap.Params, snap.Pricing, snap.Traffic, snap.Profile)

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := export.WriteCSV(out, rows, snap.Pricing, cfg.Currency); err != nil {
				return err
			}
			if output != "" {
				fmt.Printf("Wrote %d scenarios to %s\n", len(rows), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to file instead of stdout")
	flags.register(cmd)
	return cmd
}
