package engine

import (
	"fmt"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// ValidationResult holds the accumulated semantic violations of a snapshot.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateState checks cross-field consistency of a snapshot beyond shape
// validation. It accumulates every violation instead of short-circuiting, so
// the orchestrator can surface all problems at once.
func ValidateState(state *domain.ProtocolState) ValidationResult {
	var errs []string

	if state.CurrentTest != nil && state.CurrentWashout != nil {
		errs = append(errs, "currentTest and currentWashout are mutually exclusive")
	}

	if state.CurrentTest != nil {
		if msg := checkDoseSequence(state.CurrentTest.Doses); msg != "" {
			errs = append(errs, fmt.Sprintf("current test: %s", msg))
		}
	}
	for _, test := range state.CompletedTests {
		if msg := checkDoseSequence(test.Doses); msg != "" {
			errs = append(errs, fmt.Sprintf("completed test %q: %s", test.FoodItem, msg))
		}
	}

	if w := state.CurrentWashout; w != nil && !w.EndDate.After(w.StartDate) {
		errs = append(errs, "washout end date must be after start date")
	}

	switch state.Phase {
	case domain.PhaseWashout:
		if state.CurrentWashout == nil {
			errs = append(errs, "phase is washout but no washout is active")
		}
	case domain.PhaseCompleted:
		if state.CurrentTest != nil || state.CurrentWashout != nil {
			errs = append(errs, "phase is completed but a test or washout is still active")
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// checkDoseSequence verifies day numbers form 1,2,... with no gaps.
func checkDoseSequence(doses []domain.DoseRecord) string {
	for i, dose := range doses {
		if dose.DayNumber != i+1 {
			return fmt.Sprintf("dose day numbers must be sequential starting at 1 (position %d has day %d)", i+1, dose.DayNumber)
		}
	}
	return ""
}
