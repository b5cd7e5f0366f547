package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the configured model pricing presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tINPUT COST/TOKEN\tOUTPUT COST/TOKEN\tDEFAULT")
			for _, m := range cfg.Models {
				def := ""
				if m.Model == cfg.DefaultModel {
					def = "*"
				}
				fmt.Fprintf(w, "%s\t%s%.8f\t%s%.8f\t%s\n",
					m.Model, cfg.Currency, m.InputCostPerToken, cfg.Currency, m.OutputCostPerToken, def)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	return cmd
}
