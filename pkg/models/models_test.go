package models

import (
	"errors"
	"testing"
)

func TestVisitors(t *testing.T) {
	traffic := TrafficInputs{Population: 200000, ConversionRate: 0.5}
	if got := traffic.Visitors(); got != 100000 {
		t.Errorf("visitors = %v, want 100000", got)
	}
}

func TestTokensPerTurn(t *testing.T) {
	profile := TurnTokenProfile{QuestionTokens: 100, RetrievalTokens: 8000, AnswerTokens: 300}
	if got := profile.TokensPerTurn(); got != 8400 {
		t.Errorf("tokens per turn = %d, want 8400", got)
	}
	if got := profile.InputTokensPerTurn(); got != 8100 {
		t.Errorf("input tokens per turn = %d, want 8100", got)
	}
	if got := profile.OutputTokensPerTurn(); got != 300 {
		t.Errorf("output tokens per turn = %d, want 300", got)
	}
}

func TestBlendedPricing(t *testing.T) {
	p := BlendedPricing(0.000002)
	if !p.Blended() {
		t.Error("expected blended pricing")
	}
	if p.InputCostPerToken != 0.000002 || p.OutputCostPerToken != 0.000002 {
		t.Errorf("unexpected rates: %+v", p)
	}

	split := TokenPricing{InputCostPerToken: 0.000002, OutputCostPerToken: 0.000008}
	if split.Blended() {
		t.Error("expected split pricing")
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		field string
	}{
		{"negative population", TrafficInputs{Population: -1, ConversionRate: 0.5}.Validate(), "population"},
		{"zero population", TrafficInputs{Population: 0, ConversionRate: 0.5}.Validate(), "population"},
		{"conversion above one", TrafficInputs{Population: 1000, ConversionRate: 1.5}.Validate(), "conversion_rate"},
		{"negative conversion", TrafficInputs{Population: 1000, ConversionRate: -0.1}.Validate(), "conversion_rate"},
		{"engagement above one", UsageParameters{EngagementRate: 1.1, ConversationsPerUser: 1}.Validate(), "engagement_rate"},
		{"negative conversations", UsageParameters{EngagementRate: 0.5, ConversationsPerUser: -1}.Validate(), "conversations_per_user"},
		{"negative turns", UsageParameters{EngagementRate: 0.5, ConversationsPerUser: 1, QuestionsPerConversation: -1}.Validate(), "questions_per_conversation"},
		{"negative question tokens", TurnTokenProfile{QuestionTokens: -1}.Validate(), "question_tokens"},
		{"negative retrieval tokens", TurnTokenProfile{RetrievalTokens: -1}.Validate(), "retrieval_tokens"},
		{"negative answer tokens", TurnTokenProfile{AnswerTokens: -1}.Validate(), "answer_tokens"},
		{"zero input rate", TokenPricing{InputCostPerToken: 0, OutputCostPerToken: 0.01}.Validate(), "input_cost_per_token"},
		{"zero output rate", TokenPricing{InputCostPerToken: 0.01, OutputCostPerToken: 0}.Validate(), "output_cost_per_token"},
	}

	for _, tc := range cases {
		if tc.err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !errors.Is(tc.err, ErrInvalidParameter) {
			t.Errorf("%s: error does not wrap ErrInvalidParameter: %v", tc.name, tc.err)
		}
		var ipe *InvalidParameterError
		if !errors.As(tc.err, &ipe) {
			t.Errorf("%s: error is not an InvalidParameterError: %v", tc.name, tc.err)
			continue
		}
		if ipe.Field != tc.field {
			t.Errorf("%s: field %q, want %q", tc.name, ipe.Field, tc.field)
		}
	}
}

func TestValidationAccepts(t *testing.T) {
	valid := []error{
		TrafficInputs{Population: 1, ConversionRate: 0}.Validate(),
		TrafficInputs{Population: 220000, ConversionRate: 1}.Validate(),
		UsageParameters{EngagementRate: 0, ConversationsPerUser: 0, QuestionsPerConversation: 0}.Validate(),
		UsageParameters{EngagementRate: 1, ConversationsPerUser: 4.6, QuestionsPerConversation: 8}.Validate(),
		TurnTokenProfile{}.Validate(),
		BlendedPricing(0.0000036184).Validate(),
	}
	for i, err := range valid {
		if err != nil {
			t.Errorf("case %d: unexpected error: %v", i, err)
		}
	}
}

func TestSnapshotValidate(t *testing.T) {
	snap := InputSnapshot{
		Traffic: TrafficInputs{Population: 220000, ConversionRate: 0.574},
		Params:  UsageParameters{EngagementRate: 0.03, ConversationsPerUser: 1.2, QuestionsPerConversation: 4},
		Profile: TurnTokenProfile{QuestionTokens: 100, AnswerTokens: 200},
		Pricing: BlendedPricing(0.0000036184),
	}
	if err := snap.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	snap.Params.EngagementRate = 2
	var ipe *InvalidParameterError
	if err := snap.Validate(); !errors.As(err, &ipe) || ipe.Field != "engagement_rate" {
		t.Errorf("expected engagement_rate error, got %v", err)
	}
}
