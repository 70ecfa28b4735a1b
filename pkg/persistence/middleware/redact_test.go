package middleware_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fodmaplab/reintro/pkg/adapters/memory"
	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/persistence/middleware"
)

func TestRedactMiddleware_MasksNotes(t *testing.T) {
	inner := memory.New()
	store := middleware.NewRedactMiddleware([]string{
		`\b\d{3}-\d{3}-\d{4}\b`, // phone numbers
		`(?i)dr\.\s+\w+`,        // clinician names
	})(inner)
	ctx := context.Background()

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
			Notes:         "Call 555-123-4567 if this worsens",
			Symptoms: []domain.SymptomRecord{{
				Timestamp: start.Add(2 * time.Hour),
				Severity:  domain.SeverityMild,
				Type:      "bloating",
				Notes:     "Discussed with Dr. Herrera",
			}},
		}},
	}

	require.NoError(t, store.Save(ctx, "user-1", state))

	persisted, err := inner.Load(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, persisted.CurrentTest)

	dose := persisted.CurrentTest.Doses[0]
	assert.Equal(t, "Call [REDACTED] if this worsens", dose.Notes)
	assert.Equal(t, "Discussed with [REDACTED]", dose.Symptoms[0].Notes)

	// Structured data must survive untouched.
	assert.Equal(t, "Honey", dose.FoodItem)
	assert.Equal(t, domain.SeverityMild, dose.Symptoms[0].Severity)
}

func TestRedactMiddleware_CallerSnapshotUntouched(t *testing.T) {
	store := middleware.NewRedactMiddleware([]string{`secret`})(memory.New())
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-2", start)
	state.CompletedTests = []domain.FoodTestResult{{
		FoodItem:        "Milk",
		FODMAPGroup:     domain.GroupLactose,
		ToleranceStatus: domain.StatusTolerated,
		StartDate:       start,
		Doses: []domain.DoseRecord{{
			Date:          start,
			DayNumber:     1,
			FoodItem:      "Milk",
			PortionSize:   "1/4 cup",
			PortionAmount: 60,
			Notes:         "secret detail",
		}},
	}}

	require.NoError(t, store.Save(ctx, "user-2", state))

	// The in-memory snapshot handed to Save keeps its original notes.
	assert.Equal(t, "secret detail", state.CompletedTests[0].Doses[0].Notes)
}
