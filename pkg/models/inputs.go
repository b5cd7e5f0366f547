package models

import "time"

// TrafficInputs describes the population a deployment could reach.
type TrafficInputs struct {
	// Population is the total number of residents served by the deployment.
	Population int64 `json:"population" yaml:"population"`
	// ConversionRate is the fraction of the population that are monthly
	// active visitors, in [0,1].
	ConversionRate float64 `json:"conversion_rate" yaml:"conversion_rate"`
}

// Visitors returns the projected monthly unique visitors.
func (t TrafficInputs) Visitors() float64 {
	return float64(t.Population) * t.ConversionRate
}

// UsageParameters holds one scenario's behavioral assumptions.
type UsageParameters struct {
	// EngagementRate is the fraction of visitors who use the chatbot, in [0,1].
	EngagementRate float64 `json:"engagement_rate" yaml:"engagement_rate"`
	// ConversationsPerUser is the average number of conversations each
	// engaged user has per month.
	ConversationsPerUser float64 `json:"conversations_per_user" yaml:"conversations_per_user"`
	// QuestionsPerConversation is the average number of turns per conversation.
	QuestionsPerConversation int `json:"questions_per_conversation" yaml:"questions_per_conversation"`
}

// TurnTokenProfile breaks down the tokens consumed by a single turn.
type TurnTokenProfile struct {
	QuestionTokens  int64 `json:"question_tokens" yaml:"question_tokens"`
	RetrievalTokens int64 `json:"retrieval_tokens" yaml:"retrieval_tokens"`
	AnswerTokens    int64 `json:"answer_tokens" yaml:"answer_tokens"`
}

// TokensPerTurn returns the total tokens one turn consumes.
func (p TurnTokenProfile) TokensPerTurn() int64 {
	return p.QuestionTokens + p.RetrievalTokens + p.AnswerTokens
}

// InputTokensPerTurn returns the tokens submitted to the model per turn
// (the user's question plus retrieved context).
func (p TurnTokenProfile) InputTokensPerTurn() int64 {
	return p.QuestionTokens + p.RetrievalTokens
}

// OutputTokensPerTurn returns the tokens generated by the model per turn.
func (p TurnTokenProfile) OutputTokensPerTurn() int64 {
	return p.AnswerTokens
}

// InputSnapshot is the complete set of inputs for one estimation run.
// Only the most recently saved snapshot is ever kept.
type InputSnapshot struct {
	Traffic TrafficInputs    `json:"traffic" yaml:"traffic"`
	Params  UsageParameters  `json:"usage" yaml:"usage"`
	Profile TurnTokenProfile `json:"turn_profile" yaml:"turn_profile"`
	Pricing TokenPricing     `json:"pricing" yaml:"pricing"`
	SavedAt time.Time        `json:"saved_at,omitempty" yaml:"saved_at,omitempty"`
}

// Validate checks the snapshot's inputs as a unit.
func (s InputSnapshot) Validate() error {
	if err := s.Traffic.Validate(); err != nil {
		return err
	}
	if err := s.Params.Validate(); err != nil {
		return err
	}
	if err := s.Profile.Validate(); err != nil {
		return err
	}
	return s.Pricing.Validate()
}
