// Package estimator projects the monthly token cost of a chatbot deployment
// from engagement assumptions and per-token pricing. Every function is pure:
// identical inputs always produce identical output, and nothing here reads
// or writes ambient state.
package estimator

import "github.com/chatcost-ai/chatcost/pkg/models"

// Estimate maps one scenario's inputs to a CostEstimate.
//
// The caller is responsible for validation; Estimate assumes every rate is
// in range and every count non-negative, and performs no clamping.
func Estimate(params models.UsageParameters, pricing models.TokenPricing, visitors float64, profile models.TurnTokenProfile) models.CostEstimate {
	engagedUsers := visitors * params.EngagementRate
	totalConversations := engagedUsers * params.ConversationsPerUser

	inputTokens := conversationTokens(profile.InputTokensPerTurn(), params.QuestionsPerConversation)
	outputTokens := conversationTokens(profile.OutputTokensPerTurn(), params.QuestionsPerConversation)
	tokensPerConversation := inputTokens + outputTokens

	totalInput := totalConversations * float64(inputTokens)
	totalOutput := totalConversations * float64(outputTokens)

	return models.CostEstimate{
		EngagedUsers:                engagedUsers,
		TotalConversations:          totalConversations,
		TokensPerConversation:       tokensPerConversation,
		InputTokensPerConversation:  inputTokens,
		OutputTokensPerConversation: outputTokens,
		TotalTokens:                 totalInput + totalOutput,
		EstimatedCost:               totalInput*pricing.InputCostPerToken + totalOutput*pricing.OutputCostPerToken,
	}
}

// EstimateSnapshot is a convenience wrapper over a complete input bundle.
func EstimateSnapshot(s models.InputSnapshot) models.CostEstimate {
	return Estimate(s.Params, s.Pricing, s.Traffic.Visitors(), s.Profile)
}

// conversationTokens accumulates per-turn token contributions over a
// conversation of the given length.
//
// The first turn costs perTurn alone. Every later turn re-submits the
// previous turn's content as conversational context, so it contributes
// perTurn plus the previous turn's constant share. With a constant perTurn
// this collapses to perTurn × (2×turns − 1), but the loop is kept positional
// so per-turn profiles can vary by index later.
func conversationTokens(perTurn int64, turns int) int64 {
	var total int64
	var carried int64
	for i := 1; i <= turns; i++ {
		contribution := perTurn
		if i > 1 {
			contribution += carried
		}
		total += contribution
		carried = perTurn
	}
	return total
}
