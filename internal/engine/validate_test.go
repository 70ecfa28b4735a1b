package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fodmaplab/reintro/pkg/domain"
)

func validWashout(start time.Time) *domain.WashoutPeriod {
	return &domain.WashoutPeriod{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 3),
		DurationDays: 3,
		Reason:       "mild symptoms require 3-day washout",
	}
}

func validTest(start time.Time) *domain.FoodTestResult {
	return &domain.FoodTestResult{
		FoodItem:        "Honey",
		FODMAPGroup:     domain.GroupFructose,
		ToleranceStatus: domain.StatusUntested,
		StartDate:       start,
		Doses: []domain.DoseRecord{
			dose(1, "1 tsp", domain.SeverityNone),
			dose(2, "2 tsp", domain.SeverityNone),
		},
	}
}

func TestValidateState_Valid(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	state := domain.NewProtocolState("user-1", start)
	assert.True(t, ValidateState(state).Valid)

	state.CurrentTest = validTest(start)
	assert.True(t, ValidateState(state).Valid)

	state.CurrentTest = nil
	state.CurrentWashout = validWashout(start)
	state.Phase = domain.PhaseWashout
	assert.True(t, ValidateState(state).Valid)
}

func TestValidateState_MutualExclusion(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-1", start)
	state.CurrentTest = validTest(start)
	state.CurrentWashout = validWashout(start)

	result := ValidateState(state)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "currentTest and currentWashout are mutually exclusive")
}

func TestValidateState_DoseSequence(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("gap in current test", func(t *testing.T) {
		state := domain.NewProtocolState("user-1", start)
		state.CurrentTest = validTest(start)
		state.CurrentTest.Doses = []domain.DoseRecord{
			dose(1, "1 tsp", domain.SeverityNone),
			dose(3, "1 tbsp", domain.SeverityNone),
		}

		result := ValidateState(state)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "current test:")
	})

	t.Run("completed test names the food", func(t *testing.T) {
		state := domain.NewProtocolState("user-1", start)
		bad := *validTest(start)
		bad.FoodItem = "Milk"
		bad.Doses = []domain.DoseRecord{dose(2, "1/2 cup", domain.SeverityNone)}
		state.CompletedTests = []domain.FoodTestResult{bad}

		result := ValidateState(state)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], `completed test "Milk"`)
	})
}

func TestValidateState_WashoutDates(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-1", start)
	state.Phase = domain.PhaseWashout
	state.CurrentWashout = &domain.WashoutPeriod{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, -1),
		DurationDays: 3,
		Reason:       "inverted",
	}

	result := ValidateState(state)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "washout end date must be after start date")
}

func TestValidateState_PhaseConsistency(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("washout phase without washout", func(t *testing.T) {
		state := domain.NewProtocolState("user-1", start)
		state.Phase = domain.PhaseWashout

		result := ValidateState(state)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "phase is washout but no washout is active")
	})

	t.Run("completed phase with active test", func(t *testing.T) {
		state := domain.NewProtocolState("user-1", start)
		state.Phase = domain.PhaseCompleted
		state.CurrentTest = validTest(start)

		result := ValidateState(state)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "phase is completed but a test or washout is still active")
	})
}

func TestValidateState_AccumulatesAllViolations(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-1", start)
	state.Phase = domain.PhaseCompleted
	state.CurrentTest = validTest(start)
	state.CurrentTest.Doses = []domain.DoseRecord{dose(2, "2 tsp", domain.SeverityNone)}
	state.CurrentWashout = &domain.WashoutPeriod{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, -2),
		DurationDays: 3,
		Reason:       "inverted",
	}

	result := ValidateState(state)
	assert.False(t, result.Valid)
	// Mutual exclusion, dose gap, inverted washout, phase mismatch.
	assert.Len(t, result.Errors, 4)
}
