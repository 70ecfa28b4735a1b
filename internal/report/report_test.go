package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fodmaplab/reintro/internal/report"
	"github.com/fodmaplab/reintro/pkg/domain"
)

func TestBuild_CompletedTests(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-1", start)
	state.CompletedTests = []domain.FoodTestResult{
		{
			FoodItem:            "Honey",
			FODMAPGroup:         domain.GroupFructose,
			ToleranceStatus:     domain.StatusTolerated,
			MaxToleratedPortion: "1 tbsp",
			StartDate:           start,
		},
		{
			FoodItem:        "Milk",
			FODMAPGroup:     domain.GroupLactose,
			ToleranceStatus: domain.StatusTrigger,
			TriggerPortion:  "1/4 cup",
			StartDate:       start.AddDate(0, 0, 6),
		},
	}

	md := report.Build(state)

	assert.Contains(t, md, "# FODMAP Reintroduction Report")
	assert.Contains(t, md, "Tests completed: 2")
	assert.Contains(t, md, "Groups covered: 2 of 5")
	assert.Contains(t, md, "Tolerated: Honey")
	assert.Contains(t, md, "Triggers: Milk")
	assert.Contains(t, md, "| Honey | fructose | tolerated | 1 tbsp | — |")
	assert.Contains(t, md, "| Milk | lactose | trigger | — | 1/4 cup |")
}

func TestBuild_CurrentWashout(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-2", start)
	state.Phase = domain.PhaseWashout
	state.CurrentWashout = &domain.WashoutPeriod{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 7),
		DurationDays: 7,
		Reason:       "severe symptoms require 7-day washout",
	}

	md := report.Build(state)

	assert.Contains(t, md, "## Current washout")
	assert.Contains(t, md, "severe symptoms require 7-day washout")
	assert.Contains(t, md, "2026-03-09")
}

func TestBuild_CurrentTestDoseLines(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	state := domain.NewProtocolState("user-3", start)
	state.CurrentTest = &domain.FoodTestResult{
		FoodItem:        "Garlic",
		FODMAPGroup:     domain.GroupFructans,
		ToleranceStatus: domain.StatusUntested,
		StartDate:       start,
		Doses: []domain.DoseRecord{{
			Date:          start,
			DayNumber:     1,
			FoodItem:      "Garlic",
			PortionSize:   "1/2 slice",
			PortionAmount: 1,
			Symptoms: []domain.SymptomRecord{{
				Timestamp: start.Add(3 * time.Hour),
				Severity:  domain.SeverityMild,
				Type:      "bloating",
			}},
		}},
	}

	md := report.Build(state)

	assert.Contains(t, md, "Testing **Garlic** (fructans), 1 of 3 doses taken.")
	assert.Contains(t, md, "- Day 1 (2026-03-02): 1/2 slice, reaction: mild")
	assert.True(t, strings.HasSuffix(md, "\n"), "report ends with a newline")
}
