package reintro_test

import (
	"fmt"
	"time"

	"github.com/fodmaplab/reintro"
	"github.com/fodmaplab/reintro/pkg/domain"
)

// Example shows the simplest possible use: ask the engine what a freshly
// enrolled patient should do.
func Example() {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("patient-1", start)

	eng := reintro.New()
	action, err := eng.NextAction(state, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(action.Action)
	fmt.Println(action.Message)
	// Output:
	// start_next_group
	// Start testing the fructose group with Honey: 1 tsp on day 1.
}

// Example_classify derives a tolerance outcome from logged doses.
func Example_classify() {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	doses := []domain.DoseRecord{
		{Date: start, DayNumber: 1, FoodItem: "Honey", PortionSize: "1 tsp", PortionAmount: 1},
		{Date: start.AddDate(0, 0, 1), DayNumber: 2, FoodItem: "Honey", PortionSize: "2 tsp", PortionAmount: 2,
			Symptoms: []domain.SymptomRecord{{
				Timestamp: start.AddDate(0, 0, 1).Add(4 * time.Hour),
				Severity:  domain.SeverityModerate,
				Type:      "bloating",
			}}},
	}

	c := reintro.New().Classify(doses)
	fmt.Println(c.Status, c.MaxToleratedPortion, c.TriggerPortion)
	// Output:
	// sensitive 1 tsp 2 tsp
}
