package engine

import (
	"fmt"
	"time"

	"github.com/fodmaplab/reintro/pkg/domain"
)

func washoutInstructions() []string {
	return []string{
		"Avoid all high-FODMAP foods until the washout ends",
		"Keep logging any symptoms, even mild ones",
		"Resume your baseline low-FODMAP diet",
	}
}

// handleWashout decides the next step while a washout is active. A finished
// washout falls through to next-test determination: washout completion and
// group advancement are the same decision whether the washout followed a full
// test or an early stop.
func (e *Engine) handleWashout(state *domain.ProtocolState, now time.Time) (*domain.NextAction, error) {
	washout := state.CurrentWashout
	status := CheckWashoutStatus(washout, now)
	if status.Complete {
		e.logger.Debug("washout complete, determining next test", "user_id", state.UserID)
		return e.determineNextTest(state, now)
	}

	return &domain.NextAction{
		Action:       domain.ActionContinueWashout,
		Phase:        domain.PhaseWashout,
		Message:      fmt.Sprintf("Washout in progress: %d day(s) remaining. %s.", status.DaysRemaining, washout.Reason),
		Instructions: washoutInstructions(),
		NextMilestone: &domain.Milestone{
			Date:        washout.EndDate,
			Description: "Washout period ends",
		},
		WashoutDaysRemaining: status.DaysRemaining,
	}, nil
}

// handleCurrentTest decides the next step of an active food test: abort into
// a washout on a stopping reaction, wrap up into a washout after day 3, or
// schedule the next dose.
func (e *Engine) handleCurrentTest(state *domain.ProtocolState, now time.Time) (*domain.NextAction, error) {
	test := state.CurrentTest
	taken := len(test.Doses)

	if taken > 0 {
		last := test.Doses[taken-1]
		severity := AnalyzeSymptoms(last.Symptoms)
		if ShouldStopTest(severity, last.DayNumber) {
			e.logger.Debug("stopping test early",
				"user_id", state.UserID, "food", test.FoodItem,
				"severity", severity, "day", last.DayNumber)
			washout := CalculateWashout(severity, now)
			return e.washoutAction(washout,
				fmt.Sprintf("Stopping the %s test: %s symptoms on day %d. %s.",
					test.FoodItem, severity, last.DayNumber, washout.Reason)), nil
		}
	}

	nextDay := taken + 1
	if nextDay > 3 {
		// All three days passed the stop filter; the washout length still
		// follows the worst severity seen across the whole test.
		maxSeverity := domain.SeverityNone
		for _, dose := range test.Doses {
			if s := AnalyzeSymptoms(dose.Symptoms); s.Rank() > maxSeverity.Rank() {
				maxSeverity = s
			}
		}
		washout := CalculateWashout(maxSeverity, now)
		return e.washoutAction(washout,
			fmt.Sprintf("The %s test is complete. %s.", test.FoodItem, washout.Reason)), nil
	}

	portion, err := PortionForDay(test.FODMAPGroup, nextDay)
	if err != nil {
		return nil, err
	}

	return &domain.NextAction{
		Action:             domain.ActionStartDose,
		Phase:              domain.PhaseTesting,
		CurrentGroup:       test.FODMAPGroup,
		CurrentFood:        test.FoodItem,
		CurrentDayNumber:   nextDay,
		RecommendedPortion: portion,
		Message:            fmt.Sprintf("Take dose %d of %s: %s.", nextDay, test.FoodItem, portion),
		Instructions: []string{
			fmt.Sprintf("Eat %s of %s with a low-FODMAP meal", portion, test.FoodItem),
			"Log any symptoms over the next 24 hours",
			"Keep the rest of your diet low-FODMAP",
		},
	}, nil
}

// washoutAction builds the continue_washout decision for a freshly computed
// washout period.
func (e *Engine) washoutAction(washout domain.WashoutPeriod, message string) *domain.NextAction {
	return &domain.NextAction{
		Action:       domain.ActionContinueWashout,
		Phase:        domain.PhaseWashout,
		Message:      message,
		Instructions: washoutInstructions(),
		NextMilestone: &domain.Milestone{
			Date:        washout.EndDate,
			Description: "Washout period ends",
		},
		WashoutDaysRemaining: washout.DurationDays,
	}
}

// determineNextTest picks the next untested group, or closes the protocol
// with a summary when every group has been covered.
func (e *Engine) determineNextTest(state *domain.ProtocolState, now time.Time) (*domain.NextAction, error) {
	group, ok := NextGroup(state)
	if !ok {
		e.logger.Debug("protocol complete", "user_id", state.UserID,
			"tests", len(state.CompletedTests))
		return &domain.NextAction{
			Action:  domain.ActionProtocolComplete,
			Phase:   domain.PhaseCompleted,
			Message: "All FODMAP groups have been tested. The reintroduction protocol is complete.",
			Instructions: []string{
				"Review your tolerance summary with your dietitian",
				"Reintroduce tolerated foods into your regular diet",
				"Keep avoiding trigger foods for now",
			},
			Summary: Summarize(state),
		}, nil
	}

	foods := RecommendedFoods(group)
	if len(foods) == 0 {
		return nil, fmt.Errorf("no recommended foods for group %q", group)
	}
	portion, err := PortionForDay(group, 1)
	if err != nil {
		return nil, err
	}

	food := foods[0]
	return &domain.NextAction{
		Action:             domain.ActionStartNextGroup,
		Phase:              domain.PhaseTesting,
		CurrentGroup:       group,
		CurrentFood:        food,
		CurrentDayNumber:   1,
		RecommendedPortion: portion,
		Message:            fmt.Sprintf("Start testing the %s group with %s: %s on day 1.", group, food, portion),
		Instructions: []string{
			fmt.Sprintf("Eat %s of %s with a low-FODMAP meal", portion, food),
			"Log any symptoms over the next 24 hours",
			"Keep the rest of your diet low-FODMAP",
		},
	}, nil
}
