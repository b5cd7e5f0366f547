package models

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when an input violates a documented range.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError identifies which field is out of range. It wraps
// ErrInvalidParameter so callers can match with errors.Is.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalidParam(field, reason string) error {
	return &InvalidParameterError{Field: field, Reason: reason}
}

// Validate checks population and conversion rate ranges.
func (t TrafficInputs) Validate() error {
	if t.Population < 1 {
		return invalidParam("population", "must be a positive integer")
	}
	if t.ConversionRate < 0 || t.ConversionRate > 1 {
		return invalidParam("conversion_rate", "must be in [0,1]")
	}
	return nil
}

// Validate checks engagement and per-user conversation ranges. Zero values
// are valid and simply project zero cost.
func (u UsageParameters) Validate() error {
	if u.EngagementRate < 0 || u.EngagementRate > 1 {
		return invalidParam("engagement_rate", "must be in [0,1]")
	}
	if u.ConversationsPerUser < 0 {
		return invalidParam("conversations_per_user", "must be non-negative")
	}
	if u.QuestionsPerConversation < 0 {
		return invalidParam("questions_per_conversation", "must be non-negative")
	}
	return nil
}

// Validate checks that every token count is non-negative.
func (p TurnTokenProfile) Validate() error {
	if p.QuestionTokens < 0 {
		return invalidParam("question_tokens", "must be non-negative")
	}
	if p.RetrievalTokens < 0 {
		return invalidParam("retrieval_tokens", "must be non-negative")
	}
	if p.AnswerTokens < 0 {
		return invalidParam("answer_tokens", "must be non-negative")
	}
	return nil
}

// Validate checks that both rates are positive.
func (p TokenPricing) Validate() error {
	if p.InputCostPerToken <= 0 {
		return invalidParam("input_cost_per_token", "must be positive")
	}
	if p.OutputCostPerToken <= 0 {
		return invalidParam("output_cost_per_token", "must be positive")
	}
	return nil
}
