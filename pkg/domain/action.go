package domain

import (
	"time"
)

// Milestone points the patient at the next notable date in the protocol.
type Milestone struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// ProtocolSummary aggregates the outcome of a finished protocol.
type ProtocolSummary struct {
	TotalTestsCompleted int           `json:"totalTestsCompleted"`
	GroupsCompleted     []FODMAPGroup `json:"groupsCompleted"`
	ToleratedFoods      []string      `json:"toleratedFoods"`
	SensitiveFoods      []string      `json:"sensitiveFoods"`
	TriggerFoods        []string      `json:"triggerFoods"`
}

// NextAction is the engine's single decision output: what the patient should
// do next, given the supplied snapshot and timestamp.
type NextAction struct {
	Action ActionType    `json:"action"`
	Phase  ProtocolPhase `json:"phase"`

	CurrentGroup       FODMAPGroup `json:"currentGroup,omitempty"`
	CurrentFood        string      `json:"currentFood,omitempty"`
	CurrentDayNumber   int         `json:"currentDayNumber,omitempty"`
	RecommendedPortion string      `json:"recommendedPortion,omitempty"`

	Message string `json:"message"`
	// Instructions is an ordered list of patient-facing steps.
	Instructions []string `json:"instructions"`

	NextMilestone        *Milestone       `json:"nextMilestone,omitempty"`
	WashoutDaysRemaining int              `json:"washoutDaysRemaining,omitempty"`
	Summary              *ProtocolSummary `json:"summary,omitempty"`

	// Errors carries the accumulated consistency violations when Action is
	// ActionError.
	Errors []string `json:"errors,omitempty"`
}
