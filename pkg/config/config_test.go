package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Listen != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Listen)
	}
	if cfg.DefaultModel != "gpt-4" {
		t.Errorf("expected gpt-4 default, got %s", cfg.DefaultModel)
	}
	if cfg.Traffic.Population != 220000 {
		t.Errorf("expected population 220000, got %d", cfg.Traffic.Population)
	}
	if cfg.TurnProfile.TokensPerTurn() != 300 {
		t.Errorf("expected 300 tokens per turn, got %d", cfg.TurnProfile.TokensPerTurn())
	}
	if cfg.Custom.ConversationsPerUser != 1.2 {
		t.Errorf("expected 1.2 conversations per user, got %v", cfg.Custom.ConversationsPerUser)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_DB_PATH", "council.db")

	content := `
listen: ":9090"
db_path: ${TEST_DB_PATH}
currency: "$"
default_model: gpt-3
traffic:
  population: 150000
  conversion_rate: 0.4
turn_profile:
  question_tokens: 50
  retrieval_tokens: 8000
  answer_tokens: 250
custom:
  engagement_rate: 0.06
  conversations_per_user: 4.6
  questions_per_conversation: 8
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Listen != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Listen)
	}
	if cfg.DBPath != "council.db" {
		t.Errorf("env var not expanded: got %s", cfg.DBPath)
	}
	if cfg.Currency != "$" {
		t.Errorf("expected $, got %s", cfg.Currency)
	}
	if cfg.Traffic.Population != 150000 {
		t.Errorf("expected population 150000, got %d", cfg.Traffic.Population)
	}
	if cfg.TurnProfile.RetrievalTokens != 8000 {
		t.Errorf("expected 8000 retrieval tokens, got %d", cfg.TurnProfile.RetrievalTokens)
	}
	if cfg.Custom.QuestionsPerConversation != 8 {
		t.Errorf("expected 8 turns, got %d", cfg.Custom.QuestionsPerConversation)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPricingFor(t *testing.T) {
	cfg := Default()

	p := cfg.PricingFor("gpt-3")
	if p.InputCostPerToken != 0.000002 {
		t.Errorf("gpt-3 rate = %v, want 0.000002", p.InputCostPerToken)
	}

	// Empty and unknown names fall back to the default model.
	for _, name := range []string{"", "no-such-model"} {
		p = cfg.PricingFor(name)
		if p.InputCostPerToken != 0.0000036184 {
			t.Errorf("PricingFor(%q) = %v, want gpt-4 rate", name, p.InputCostPerToken)
		}
	}
}
