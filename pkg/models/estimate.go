package models

// CostEstimate is the derived output of one estimation run. Every field is
// recomputed from the inputs on each call; nothing here has independent
// lifecycle or is ever persisted.
type CostEstimate struct {
	// EngagedUsers is the projected number of monthly visitors who use
	// the chatbot at least once.
	EngagedUsers float64 `json:"engaged_users"`
	// TotalConversations is the projected monthly conversation count.
	TotalConversations float64 `json:"total_conversations"`
	// TokensPerConversation is the tokens consumed by one average
	// conversation, context resubmission included.
	TokensPerConversation int64 `json:"tokens_per_conversation"`
	// InputTokensPerConversation and OutputTokensPerConversation split
	// TokensPerConversation by direction for split pricing.
	InputTokensPerConversation  int64 `json:"input_tokens_per_conversation"`
	OutputTokensPerConversation int64 `json:"output_tokens_per_conversation"`
	// TotalTokens is the projected monthly token volume.
	TotalTokens float64 `json:"total_tokens"`
	// EstimatedCost is the projected monthly cost in the configured currency.
	EstimatedCost float64 `json:"estimated_cost"`
}
