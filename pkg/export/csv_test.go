package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/chatcost-ai/chatcost/pkg/models"
	"github.com/chatcost-ai/chatcost/pkg/scenario"
)

func buildRows(t *testing.T) ([]scenario.Row, models.TokenPricing) {
	t.Helper()
	traffic := models.TrafficInputs{Population: 220000, ConversionRate: 0.574}
	profile := models.TurnTokenProfile{QuestionTokens: 100, AnswerTokens: 200}
	pricing := models.BlendedPricing(0.0000036184)
	custom := models.UsageParameters{EngagementRate: 0.03, ConversationsPerUser: 1.2, QuestionsPerConversation: 4}
	return scenario.BuildTable(scenario.DefaultSources(), custom, pricing, traffic, profile), pricing
}

func TestWriteCSV(t *testing.T) {
	rows, pricing := buildRows(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows, pricing, "£"); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 5 {
		t.Fatalf("expected header + 4 rows, got %d records", len(records))
	}
	for i, col := range Header {
		if records[0][i] != col {
			t.Errorf("header column %d: got %q, want %q", i, records[0][i], col)
		}
	}

	moderate := records[2]
	if moderate[0] != "Moderate" {
		t.Errorf("expected Moderate row, got %q", moderate[0])
	}
	if moderate[1] != "3.00" {
		t.Errorf("engagement rate column: got %q, want 3.00", moderate[1])
	}
	if moderate[4] != "£0.00000362" {
		t.Errorf("rate column: got %q, want £0.00000362", moderate[4])
	}
	if !strings.HasPrefix(moderate[5], "£") {
		t.Errorf("cost column missing currency prefix: %q", moderate[5])
	}
}

func TestFormatRate(t *testing.T) {
	blended := models.BlendedPricing(0.0000036184)
	if got := FormatRate(blended, "£"); got != "£0.00000362" {
		t.Errorf("blended rate: got %q", got)
	}

	split := models.TokenPricing{InputCostPerToken: 0.000002, OutputCostPerToken: 0.000008}
	if got := FormatRate(split, "£"); got != "£0.00000200/£0.00000800" {
		t.Errorf("split rate: got %q", got)
	}
}

func TestFormatCost(t *testing.T) {
	if got := FormatCost(34.544, "£"); got != "£34.54" {
		t.Errorf("got %q, want £34.54", got)
	}
}
