package domain

import (
	"time"
)

// SymptomRecord is a single logged symptom during a dose day.
type SymptomRecord struct {
	Timestamp time.Time       `json:"timestamp"`
	Severity  SymptomSeverity `json:"severity"`
	// Type is a free-form symptom category (e.g. "bloating", "cramps").
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

// DoseRecord is one day's food exposure within a 3-day test.
type DoseRecord struct {
	Date time.Time `json:"date"`
	// DayNumber is 1, 2 or 3.
	DayNumber int    `json:"dayNumber"`
	FoodItem  string `json:"foodItem"`
	// PortionSize is the display string shown to the patient (e.g. "2 tsp").
	PortionSize   string          `json:"portionSize"`
	PortionAmount float64         `json:"portionAmount"`
	Symptoms      []SymptomRecord `json:"symptoms"`
	Notes         string          `json:"notes,omitempty"`
}

// FoodTestResult captures a completed or in-progress food test.
type FoodTestResult struct {
	FoodItem    string      `json:"foodItem"`
	FODMAPGroup FODMAPGroup `json:"fodmapGroup"`
	// Doses holds one record per testing day, in day order.
	Doses           []DoseRecord    `json:"doses"`
	ToleranceStatus ToleranceStatus `json:"toleranceStatus"`
	// MaxToleratedPortion is the largest portion taken without a moderate or
	// severe reaction. Empty when no dose was tolerated.
	MaxToleratedPortion string `json:"maxToleratedPortion,omitempty"`
	// TriggerPortion is the portion that provoked the stopping reaction.
	TriggerPortion string     `json:"triggerPortion,omitempty"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
}

// WashoutPeriod is a mandatory recovery interval between food tests.
type WashoutPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	// DurationDays is 3-7 inclusive.
	DurationDays int    `json:"durationDays"`
	Reason       string `json:"reason"`
}

// ProtocolState is the caller-owned, immutable snapshot of a patient's
// protocol history. The engine never mutates it; advancing the protocol is
// the caller's responsibility, performed by persisting a new snapshot.
//
// CurrentTest and CurrentWashout are mutually exclusive. The engine's state
// validator enforces this, since the JSON wire shape cannot.
type ProtocolState struct {
	UserID    string    `json:"userId"`
	StartDate time.Time `json:"startDate"`
	// GroupSequence overrides the default group-testing order when present.
	GroupSequence  []FODMAPGroup    `json:"groupSequence,omitempty"`
	CompletedTests []FoodTestResult `json:"completedTests"`
	CurrentTest    *FoodTestResult  `json:"currentTest,omitempty"`
	CurrentWashout *WashoutPeriod   `json:"currentWashout,omitempty"`
	Phase          ProtocolPhase    `json:"phase"`
}

// NewProtocolState creates a fresh protocol snapshot in the testing phase.
func NewProtocolState(userID string, startDate time.Time) *ProtocolState {
	return &ProtocolState{
		UserID:         userID,
		StartDate:      startDate,
		CompletedTests: []FoodTestResult{},
		Phase:          PhaseTesting,
	}
}
