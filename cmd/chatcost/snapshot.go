package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatcost-ai/chatcost/pkg/export"
	"github.com/chatcost-ai/chatcost/pkg/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage the saved input snapshot",
	}

	var flags inputFlags
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Save the current inputs as the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			snap, err := flags.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			store, err := snapshot.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Save(context.Background(), snap); err != nil {
				return err
			}
			fmt.Println("Snapshot saved.")
			return nil
		},
	}
	flags.register(saveCmd)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			store, err := snapshot.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snap, err := store.Load(context.Background())
			if errors.Is(err, snapshot.ErrNoSnapshot) {
				fmt.Println("No snapshot saved.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Saved At:                 %s\n", snap.SavedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("Population:               %d\n", snap.Traffic.Population)
			fmt.Printf("Conversion Rate:          %.2f%%\n", snap.Traffic.ConversionRate*100)
			fmt.Printf("Engagement Rate:          %.2f%%\n", snap.Params.EngagementRate*100)
			fmt.Printf("Conversations per User:   %.1f\n", snap.Params.ConversationsPerUser)
			fmt.Printf("Turns per Conversation:   %d\n", snap.Params.QuestionsPerConversation)
			fmt.Printf("Question Tokens:          %d\n", snap.Profile.QuestionTokens)
			fmt.Printf("Retrieval Tokens:         %d\n", snap.Profile.RetrievalTokens)
			fmt.Printf("Answer Tokens:            %d\n", snap.Profile.AnswerTokens)
			fmt.Printf("Cost per Token:           %s\n", export.FormatRate(snap.Pricing, cfg.Currency))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			store, err := snapshot.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("Snapshot cleared.")
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.AddCommand(saveCmd, showCmd, clearCmd)
	return cmd
}
