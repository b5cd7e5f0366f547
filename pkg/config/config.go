package config

import (
	"fmt"
	"os"

	"github.com/chatcost-ai/chatcost/pkg/models"
	"gopkg.in/yaml.v3"
)

// Config holds all chatcost configuration: deployment defaults for the
// estimator inputs plus settings for the serve and snapshot commands.
type Config struct {
	Listen       string                  `yaml:"listen"`
	DBPath       string                  `yaml:"db_path"`
	Currency     string                  `yaml:"currency"`
	DefaultModel string                  `yaml:"default_model"`
	Models       []models.ModelPricing   `yaml:"models"`
	Traffic      models.TrafficInputs    `yaml:"traffic"`
	TurnProfile  models.TurnTokenProfile `yaml:"turn_profile"`
	// Custom holds the default parameters for the Custom scenario slot;
	// flags and API callers may override them per call.
	Custom models.UsageParameters `yaml:"custom"`
}

// Default returns a Config with the documented council deployment defaults.
func Default() *Config {
	return &Config{
		Listen:       ":8080",
		DBPath:       "chatcost.db",
		Currency:     "£",
		DefaultModel: "gpt-4",
		Models: []models.ModelPricing{
			{Model: "gpt-3", InputCostPerToken: 0.000002, OutputCostPerToken: 0.000002},
			{Model: "gpt-4", InputCostPerToken: 0.0000036184, OutputCostPerToken: 0.0000036184},
			{Model: "gpt-4o", InputCostPerToken: 0.000009329801, OutputCostPerToken: 0.000009329801},
			{Model: "gpt-4o-alt", InputCostPerToken: 0.00000362, OutputCostPerToken: 0.00000362},
		},
		Traffic: models.TrafficInputs{
			Population:     220000,
			ConversionRate: 0.574,
		},
		TurnProfile: models.TurnTokenProfile{
			QuestionTokens:  100,
			RetrievalTokens: 0,
			AnswerTokens:    200,
		},
		Custom: models.UsageParameters{
			EngagementRate:           0.03,
			ConversationsPerUser:     1.2,
			QuestionsPerConversation: 4,
		},
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// PricingFor returns the pricing preset for a model name, falling back to
// the default model when the name is empty or unknown.
func (c *Config) PricingFor(model string) models.TokenPricing {
	if model == "" {
		model = c.DefaultModel
	}
	for _, m := range c.Models {
		if m.Model == model {
			return m.TokenPricing()
		}
	}
	for _, m := range c.Models {
		if m.Model == c.DefaultModel {
			return m.TokenPricing()
		}
	}
	return models.TokenPricing{}
}
