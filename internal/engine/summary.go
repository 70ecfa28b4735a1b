package engine

import (
	"github.com/fodmaplab/reintro/pkg/domain"
)

// Summarize aggregates a snapshot's completed tests into a protocol summary:
// foods partitioned by tolerance status plus the distinct groups covered, in
// completion order.
func Summarize(state *domain.ProtocolState) *domain.ProtocolSummary {
	summary := &domain.ProtocolSummary{
		TotalTestsCompleted: len(state.CompletedTests),
		GroupsCompleted:     []domain.FODMAPGroup{},
		ToleratedFoods:      []string{},
		SensitiveFoods:      []string{},
		TriggerFoods:        []string{},
	}

	seen := make(map[domain.FODMAPGroup]bool)
	for _, test := range state.CompletedTests {
		if !seen[test.FODMAPGroup] {
			seen[test.FODMAPGroup] = true
			summary.GroupsCompleted = append(summary.GroupsCompleted, test.FODMAPGroup)
		}

		switch test.ToleranceStatus {
		case domain.StatusTolerated:
			summary.ToleratedFoods = append(summary.ToleratedFoods, test.FoodItem)
		case domain.StatusSensitive:
			summary.SensitiveFoods = append(summary.SensitiveFoods, test.FoodItem)
		case domain.StatusTrigger:
			summary.TriggerFoods = append(summary.TriggerFoods, test.FoodItem)
		}
	}

	return summary
}
