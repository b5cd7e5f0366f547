package main

import (
	"github.com/spf13/cobra"

	"github.com/chatcost-ai/chatcost/pkg/config"
	"github.com/chatcost-ai/chatcost/pkg/models"
)

// loadConfig returns the parsed config file, or the documented defaults when
// no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// inputFlags collects the estimator input overrides shared by the estimate,
// table, export, and snapshot commands. Flags left unset fall back to the
// config file, which in turn falls back to the documented defaults.
type inputFlags struct {
	population           int64
	conversionRate       float64
	engagementRate       float64
	conversationsPerUser float64
	turns                int
	questionTokens       int64
	retrievalTokens      int64
	answerTokens         int64
	model                string
	costPerToken         float64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Int64Var(&f.population, "population", 220000, "population served by the deployment")
	fl.Float64Var(&f.conversionRate, "conversion-rate", 0.574, "fraction of the population that are monthly visitors [0,1]")
	fl.Float64Var(&f.engagementRate, "engagement-rate", 0.03, "fraction of visitors who use the chatbot [0,1]")
	fl.Float64Var(&f.conversationsPerUser, "conversations-per-user", 1.2, "average conversations per engaged user per month")
	fl.IntVar(&f.turns, "turns", 4, "average turns per conversation")
	fl.Int64Var(&f.questionTokens, "question-tokens", 100, "tokens in the user's question per turn")
	fl.Int64Var(&f.retrievalTokens, "retrieval-tokens", 0, "retrieved context tokens submitted per turn")
	fl.Int64Var(&f.answerTokens, "answer-tokens", 200, "tokens in the model's answer per turn")
	fl.StringVar(&f.model, "model", "", "model pricing preset (default from config)")
	fl.Float64Var(&f.costPerToken, "cost-per-token", 0, "blended cost per token, overrides the model preset")
}

// resolve merges config defaults with whichever flags the user set, then
// validates the bundle before any computation runs.
func (f *inputFlags) resolve(cmd *cobra.Command, cfg *config.Config) (models.InputSnapshot, error) {
	snap := models.InputSnapshot{
		Traffic: cfg.Traffic,
		Params:  cfg.Custom,
		Profile: cfg.TurnProfile,
		Pricing: cfg.PricingFor(f.model),
	}

	fl := cmd.Flags()
	if fl.Changed("population") {
		snap.Traffic.Population = f.population
	}
	if fl.Changed("conversion-rate") {
		snap.Traffic.ConversionRate = f.conversionRate
	}
	if fl.Changed("engagement-rate") {
		snap.Params.EngagementRate = f.engagementRate
	}
	if fl.Changed("conversations-per-user") {
		snap.Params.ConversationsPerUser = f.conversationsPerUser
	}
	if fl.Changed("turns") {
		snap.Params.QuestionsPerConversation = f.turns
	}
	if fl.Changed("question-tokens") {
		snap.Profile.QuestionTokens = f.questionTokens
	}
	if fl.Changed("retrieval-tokens") {
		snap.Profile.RetrievalTokens = f.retrievalTokens
	}
	if fl.Changed("answer-tokens") {
		snap.Profile.AnswerTokens = f.answerTokens
	}
	if fl.Changed("cost-per-token") {
		snap.Pricing = models.BlendedPricing(f.costPerToken)
	}

	if err := snap.Validate(); err != nil {
		return models.InputSnapshot{}, err
	}
	return snap, nil
}
