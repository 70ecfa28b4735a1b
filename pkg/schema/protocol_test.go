package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fodmaplab/reintro/pkg/domain"
)

func wellFormedState() *domain.ProtocolState {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-1", start)
	state.CurrentTest = &domain.FoodTestResult{
		FoodItem:        "Honey",
		FODMAPGroup:     domain.GroupFructose,
		ToleranceStatus: domain.StatusUntested,
		StartDate:       start,
		Doses: []domain.DoseRecord{{
			Date:          start,
			DayNumber:     1,
			FoodItem:      "Honey",
			PortionSize:   "1 tsp",
			PortionAmount: 1,
			Symptoms: []domain.SymptomRecord{{
				Timestamp: start.Add(6 * time.Hour),
				Severity:  domain.SeverityMild,
				Type:      "bloating",
			}},
		}},
	}
	return state
}

func TestCheckState_WellFormed(t *testing.T) {
	assert.NoError(t, CheckState(wellFormedState()))
}

func TestCheckState_NilState(t *testing.T) {
	err := CheckState(nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, `field "state"`)
}

func TestCheckState_AccumulatesPathQualifiedErrors(t *testing.T) {
	state := wellFormedState()
	state.UserID = ""
	state.Phase = domain.ProtocolPhase("paused")
	state.CurrentTest.Doses[0].DayNumber = 5
	state.CurrentTest.Doses[0].PortionSize = ""
	state.CurrentTest.Doses[0].Symptoms[0].Severity = domain.SymptomSeverity("awful")

	err := CheckState(state)
	require.Error(t, err)

	violations := ValidationErrors(err)
	require.Len(t, violations, 5)

	paths := make([]string, len(violations))
	for i, v := range violations {
		var ve *ValidationError
		require.ErrorAs(t, v, &ve)
		paths[i] = ve.Path
	}
	assert.Contains(t, paths, "userId")
	assert.Contains(t, paths, "phase")
	assert.Contains(t, paths, "currentTest.doses[0].dayNumber")
	assert.Contains(t, paths, "currentTest.doses[0].portionSize")
	assert.Contains(t, paths, "currentTest.doses[0].symptoms[0].severity")
}

func TestCheckState_DoseCountBounds(t *testing.T) {
	t.Run("active test may have zero doses", func(t *testing.T) {
		state := wellFormedState()
		state.CurrentTest.Doses = nil
		assert.NoError(t, CheckState(state))
	})

	t.Run("completed test needs at least one dose", func(t *testing.T) {
		state := wellFormedState()
		test := *state.CurrentTest
		test.Doses = nil
		test.ToleranceStatus = domain.StatusTolerated
		state.CurrentTest = nil
		state.CompletedTests = []domain.FoodTestResult{test}

		err := CheckState(state)
		assert.ErrorContains(t, err, "completedTests[0].doses")
	})
}

func TestCheckState_WashoutShape(t *testing.T) {
	state := wellFormedState()
	state.CurrentTest = nil
	state.CurrentWashout = &domain.WashoutPeriod{DurationDays: 10}

	err := CheckState(state)
	require.Error(t, err)

	violations := ValidationErrors(err)
	assert.Len(t, violations, 3, "missing dates plus out-of-range duration")
}

func TestCheckState_GroupSequence(t *testing.T) {
	state := wellFormedState()
	state.GroupSequence = []domain.FODMAPGroup{domain.GroupPolyols, domain.FODMAPGroup("sugar")}

	err := CheckState(state)
	assert.ErrorContains(t, err, "groupSequence[1]")
}

func TestCheckNextAction(t *testing.T) {
	valid := &domain.NextAction{
		Action:           domain.ActionStartDose,
		Phase:            domain.PhaseTesting,
		CurrentGroup:     domain.GroupFructose,
		CurrentDayNumber: 2,
	}
	assert.NoError(t, CheckNextAction(valid))

	assert.Error(t, CheckNextAction(nil))

	bad := &domain.NextAction{
		Action:               domain.ActionType("pause"),
		Phase:                domain.PhaseTesting,
		WashoutDaysRemaining: -1,
	}
	err := CheckNextAction(bad)
	require.Error(t, err)
	assert.Len(t, ValidationErrors(err), 2)
}

func TestAggregateError_Message(t *testing.T) {
	single := &AggregateError{Errors: []error{
		&ValidationError{Path: "phase", Reason: "required"},
	}}
	assert.Equal(t, `field "phase": required`, single.Error())

	multi := &AggregateError{Errors: []error{
		&ValidationError{Path: "phase", Reason: "required"},
		&ValidationError{Path: "userId", Reason: "required"},
	}}
	assert.Contains(t, multi.Error(), "2 validation errors")
}
