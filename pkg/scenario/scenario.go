// Package scenario evaluates the estimator across named parameter presets,
// producing the rows of a cost projection table.
package scenario

import (
	"github.com/chatcost-ai/chatcost/pkg/estimator"
	"github.com/chatcost-ai/chatcost/pkg/models"
)

// Source identifies where one table row's usage parameters come from:
// either a fixed named preset, or the caller-adjustable custom slot.
type Source interface {
	Name() string
	// resolve returns the effective parameters given the caller's
	// custom parameter set.
	resolve(custom models.UsageParameters) models.UsageParameters
}

// Preset is a named, fixed set of usage assumptions.
type Preset struct {
	Label  string
	Params models.UsageParameters
}

// Name returns the preset's display name.
func (p Preset) Name() string { return p.Label }

func (p Preset) resolve(models.UsageParameters) models.UsageParameters { return p.Params }

// CustomOverride is the slot whose parameters are always replaced by the
// caller-supplied custom set, regardless of any stored defaults.
type CustomOverride struct {
	Label string
}

// Name returns the slot's display name.
func (c CustomOverride) Name() string { return c.Label }

func (c CustomOverride) resolve(custom models.UsageParameters) models.UsageParameters {
	return custom
}

// DefaultSources returns the documented projection tiers plus the custom
// slot, in display order.
func DefaultSources() []Source {
	return []Source{
		Preset{Label: "Conservative", Params: models.UsageParameters{
			EngagementRate:           0.02,
			ConversationsPerUser:     1.0,
			QuestionsPerConversation: 3,
		}},
		Preset{Label: "Moderate", Params: models.UsageParameters{
			EngagementRate:           0.03,
			ConversationsPerUser:     1.2,
			QuestionsPerConversation: 4,
		}},
		Preset{Label: "Optimistic", Params: models.UsageParameters{
			EngagementRate:           0.05,
			ConversationsPerUser:     1.5,
			QuestionsPerConversation: 5,
		}},
		CustomOverride{Label: "Custom"},
	}
}

// Row pairs one scenario with its effective parameters and computed estimate.
type Row struct {
	Scenario string                 `json:"scenario"`
	Params   models.UsageParameters `json:"params"`
	Estimate models.CostEstimate    `json:"estimate"`
}

// BuildTable evaluates every source in order and returns one row per source.
// Rows are independent: no row's computation can affect another, and source
// order is preserved in the output.
func BuildTable(sources []Source, custom models.UsageParameters, pricing models.TokenPricing, traffic models.TrafficInputs, profile models.TurnTokenProfile) []Row {
	visitors := traffic.Visitors()
	rows := make([]Row, 0, len(sources))
	for _, src := range sources {
		params := src.resolve(custom)
		rows = append(rows, Row{
			Scenario: src.Name(),
			Params:   params,
			Estimate: estimator.Estimate(params, pricing, visitors, profile),
		})
	}
	return rows
}
