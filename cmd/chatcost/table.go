package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/chatcost-ai/chatcost/pkg/export"
	"github.com/chatcost-ai/chatcost/pkg/scenario"
)

func newTableCmd() *cobra.Command {
	var (
		configPath string
		flags      inputFlags
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show estimated monthly costs across all scenarios",
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

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SCENARIO\tENGAGEMENT\tCONV/USER\tTURNS\tTOKENS/CONV\tTOTAL TOKENS\tEST. COST")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%.2f%%\t%.1f\t%d\t%s\t%s\t%s\n",
					r.Scenario,
					r.Params.EngagementRate*100,
					r.Params.ConversationsPerUser,
					r.Params.QuestionsPerConversation,
					humanize.Comma(r.Estimate.TokensPerConversation),
					humanize.Comma(int64(r.Estimate.TotalTokens)),
					export.FormatCost(r.Estimate.EstimatedCost, cfg.Currency),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	flags.register(cmd)
	return cmd
}
