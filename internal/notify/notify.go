// Package notify derives upcoming reminders from a protocol snapshot and the
// decision just computed for it. It only produces values; delivering them
// (push, email, SMS) is the caller's concern.
package notify

import (
	"fmt"
	"time"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// ReminderKind labels what a reminder is about.
type ReminderKind string

const (
	KindDose       ReminderKind = "dose"
	KindWashoutEnd ReminderKind = "washout_end"
	KindComplete   ReminderKind = "complete"
)

// Reminder is a single scheduled nudge.
type Reminder struct {
	At      time.Time    `json:"at"`
	Kind    ReminderKind `json:"kind"`
	Message string       `json:"message"`
}

// doseHour is the local hour doses are suggested at.
const doseHour = 8

// Schedule derives the reminders implied by a decision. Identical inputs
// produce identical output; nothing is read from the environment.
func Schedule(state *domain.ProtocolState, action *domain.NextAction, now time.Time) []Reminder {
	if action == nil {
		return nil
	}

	switch action.Action {
	case domain.ActionStartDose, domain.ActionStartNextFood, domain.ActionStartNextGroup:
		return []Reminder{{
			At:   nextMorning(now),
			Kind: KindDose,
			Message: fmt.Sprintf("Time for dose %d of %s: %s.",
				action.CurrentDayNumber, action.CurrentFood, action.RecommendedPortion),
		}}

	case domain.ActionContinueWashout:
		if action.NextMilestone == nil {
			return nil
		}
		return []Reminder{{
			At:      action.NextMilestone.Date,
			Kind:    KindWashoutEnd,
			Message: "Your washout period ends today. Check in for the next step.",
		}}

	case domain.ActionProtocolComplete:
		return []Reminder{{
			At:   now,
			Kind: KindComplete,
			Message: fmt.Sprintf("Reintroduction complete after %d tests. Review your tolerance summary.",
				len(state.CompletedTests)),
		}}
	}

	return nil
}

// nextMorning returns the next occurrence of the dose hour strictly after now,
// in now's location.
func nextMorning(now time.Time) time.Time {
	morning := time.Date(now.Year(), now.Month(), now.Day(), doseHour, 0, 0, 0, now.Location())
	if !morning.After(now) {
		morning = morning.AddDate(0, 0, 1)
	}
	return morning
}
