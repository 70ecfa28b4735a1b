// Package report builds human-readable summaries of a protocol history.
// Markdown is the data format; terminal rendering is layered on top.
package report

import (
	"fmt"
	"strings"

	"github.com/fodmaplab/reintro/internal/engine"
	"github.com/fodmaplab/reintro/pkg/domain"
)

const dateLayout = "2006-01-02"

// Build renders a protocol snapshot as a markdown report.
func Build(state *domain.ProtocolState) string {
	var b strings.Builder

	b.WriteString("# FODMAP Reintroduction Report\n\n")
	fmt.Fprintf(&b, "- **Patient**: %s\n", state.UserID)
	fmt.Fprintf(&b, "- **Started**: %s\n", state.StartDate.Format(dateLayout))
	fmt.Fprintf(&b, "- **Phase**: %s\n\n", state.Phase)

	summary := engine.Summarize(state)
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Tests completed: %d\n", summary.TotalTestsCompleted)
	fmt.Fprintf(&b, "- Groups covered: %d of %d\n", len(summary.GroupsCompleted), len(engine.GroupSequence(state)))
	fmt.Fprintf(&b, "- Tolerated: %s\n", foodList(summary.ToleratedFoods))
	fmt.Fprintf(&b, "- Sensitive: %s\n", foodList(summary.SensitiveFoods))
	fmt.Fprintf(&b, "- Triggers: %s\n\n", foodList(summary.TriggerFoods))

	if len(state.CompletedTests) > 0 {
		b.WriteString("## Completed tests\n\n")
		b.WriteString("| Food | Group | Status | Max tolerated | Trigger portion |\n")
		b.WriteString("|------|-------|--------|---------------|------------------|\n")
		for _, test := range state.CompletedTests {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				test.FoodItem, test.FODMAPGroup, test.ToleranceStatus,
				orDash(test.MaxToleratedPortion), orDash(test.TriggerPortion))
		}
		b.WriteString("\n")
	}

	switch {
	case state.CurrentTest != nil:
		test := state.CurrentTest
		b.WriteString("## Current test\n\n")
		fmt.Fprintf(&b, "Testing **%s** (%s), %d of 3 doses taken.\n\n",
			test.FoodItem, test.FODMAPGroup, len(test.Doses))
		for _, dose := range test.Doses {
			severity := engine.AnalyzeSymptoms(dose.Symptoms)
			fmt.Fprintf(&b, "- Day %d (%s): %s, reaction: %s\n",
				dose.DayNumber, dose.Date.Format(dateLayout), dose.PortionSize, severity)
		}
		b.WriteString("\n")
	case state.CurrentWashout != nil:
		w := state.CurrentWashout
		b.WriteString("## Current washout\n\n")
		fmt.Fprintf(&b, "%s. Ends %s (%d days total).\n\n",
			w.Reason, w.EndDate.Format(dateLayout), w.DurationDays)
	}

	return b.String()
}

func foodList(foods []string) string {
	if len(foods) == 0 {
		return "none"
	}
	return strings.Join(foods, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
