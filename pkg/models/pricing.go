package models

// TokenPricing holds per-token rates in the configured currency.
// The simplest variant charges one blended rate for every token; split
// pricing charges input and output tokens separately.
type TokenPricing struct {
	InputCostPerToken  float64 `json:"input_cost_per_token" yaml:"input_cost_per_token"`
	OutputCostPerToken float64 `json:"output_cost_per_token" yaml:"output_cost_per_token"`
}

// BlendedPricing returns a TokenPricing that charges the same rate for
// input and output tokens, so cost reduces to total_tokens × rate.
func BlendedPricing(rate float64) TokenPricing {
	return TokenPricing{InputCostPerToken: rate, OutputCostPerToken: rate}
}

// Blended reports whether input and output rates are identical.
func (p TokenPricing) Blended() bool {
	return p.InputCostPerToken == p.OutputCostPerToken
}

// ModelPricing names a per-token rate preset for a known model.
type ModelPricing struct {
	Model              string  `json:"model" yaml:"model"`
	InputCostPerToken  float64 `json:"input_cost_per_token" yaml:"input_cost_per_token"`
	OutputCostPerToken float64 `json:"output_cost_per_token" yaml:"output_cost_per_token"`
}

// TokenPricing converts the preset into a TokenPricing value.
func (m ModelPricing) TokenPricing() TokenPricing {
	return TokenPricing{
		InputCostPerToken:  m.InputCostPerToken,
		OutputCostPerToken: m.OutputCostPerToken,
	}
}
