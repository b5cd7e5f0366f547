// Package export renders scenario tables into the downloadable CSV format.
// All currency and percentage formatting happens here, at the boundary; the
// scenario and estimator packages only ever produce numeric values.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/chatcost-ai/chatcost/pkg/models"
	"github.com/chatcost-ai/chatcost/pkg/scenario"
)

// Header is the column layout of the exported table.
var Header = []string{
	"Scenario",
	"Engagement Rate (%)",
	"Conversations per User",
	"Avg Conversation Length (Turns)",
	"Cost per Token",
	"Estimated Cost",
}

// WriteCSV writes one row per scenario to w.
func WriteCSV(w io.Writer, rows []scenario.Row, pricing models.TokenPricing, currency string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Scenario,
			fmt.Sprintf("%.2f", r.Params.EngagementRate*100),
			fmt.Sprintf("%.1f", r.Params.ConversationsPerUser),
			fmt.Sprintf("%d", r.Params.QuestionsPerConversation),
			FormatRate(pricing, currency),
			FormatCost(r.Estimate.EstimatedCost, currency),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// FormatCost renders a cost with the currency symbol, two decimal places.
func FormatCost(cost float64, currency string) string {
	return fmt.Sprintf("%s%.2f", currency, cost)
}

// FormatRate renders a per-token rate. Blended pricing prints one value,
// split pricing prints input and output rates separated by a slash.
func FormatRate(p models.TokenPricing, currency string) string {
	if p.Blended() {
		return fmt.Sprintf("%s%.8f", currency, p.InputCostPerToken)
	}
	return fmt.Sprintf("%s%.8f/%s%.8f", currency, p.InputCostPerToken, currency, p.OutputCostPerToken)
}
