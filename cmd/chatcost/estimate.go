package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/chatcost-ai/chatcost/pkg/estimator"
	"github.com/chatcost-ai/chatcost/pkg/export"
	"github.com/chatcost-ai/chatcost/pkg/models"
	"github.com/chatcost-ai/chatcost/pkg/snapshot"
)

func newEstimateCmd() *cobra.Command {
	var (
		configPath   string
		fromSnapshot bool
		flags        inputFlags
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Show the detailed monthly cost calculation for one scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			var snap models.InputSnapshot
			if fromSnapshot {
				store, err := snapshot.New(cfg.DBPath)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				snap, err = store.Load(context.Background())
				if err != nil {
					return err
				}
			} else {
				snap, err = flags.resolve(cmd, cfg)
				if err != nil {
					return err
				}
			}

			est := estimator.EstimateSnapshot(snap)
			printBreakdown(snap, est, cfg.Currency)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVar(&fromSnapshot, "from-snapshot", false, "use the saved input snapshot instead of flags")
	flags.register(cmd)
	return cmd
}

func printBreakdown(snap models.InputSnapshot, est models.CostEstimate, currency string) {
	fmt.Printf("Population:               %s\n", humanize.Comma(snap.Traffic.Population))
	fmt.Printf("Conversion Rate:          %.2f%%\n", snap.Traffic.ConversionRate*100)
	fmt.Printf("Monthly Visitors:         %s\n", humanize.Comma(int64(snap.Traffic.Visitors())))
	fmt.Printf("Engagement Rate:          %.2f%%\n", snap.Params.EngagementRate*100)
	fmt.Printf("Engaged Users:            %s\n", humanize.Comma(int64(est.EngagedUsers)))
	fmt.Printf("Total Conversations:      %s\n", humanize.Comma(int64(est.TotalConversations)))
	fmt.Printf("Tokens per Turn:          %s\n", humanize.Comma(snap.Profile.TokensPerTurn()))
	fmt.Printf("Tokens per Conversation:  %s\n", humanize.Comma(est.TokensPerConversation))
	fmt.Printf("Total Tokens:             %s\n", humanize.Comma(int64(est.TotalTokens)))
	fmt.Printf("Cost per Token:           %s\n", export.FormatRate(snap.Pricing, currency))
	fmt.Printf("Estimated Monthly Cost:   %s\n", export.FormatCost(est.EstimatedCost, currency))
}
