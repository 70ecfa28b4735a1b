package domain

// FODMAPGroup identifies one of the five testable carbohydrate groups.
// This five-group clinical taxonomy is canonical for the whole repository;
// storage adapters persist the names verbatim.
type FODMAPGroup string

const (
	GroupFructose  FODMAPGroup = "fructose"
	GroupLactose   FODMAPGroup = "lactose"
	GroupFructans  FODMAPGroup = "fructans"
	GroupGalactans FODMAPGroup = "galactans"
	GroupPolyols   FODMAPGroup = "polyols"
)

// Groups lists every valid FODMAPGroup value.
func Groups() []FODMAPGroup {
	return []FODMAPGroup{GroupFructose, GroupLactose, GroupFructans, GroupGalactans, GroupPolyols}
}

// Valid reports whether g is a known group.
func (g FODMAPGroup) Valid() bool {
	switch g {
	case GroupFructose, GroupLactose, GroupFructans, GroupGalactans, GroupPolyols:
		return true
	}
	return false
}

// SymptomSeverity grades a logged symptom.
type SymptomSeverity string

const (
	SeverityNone     SymptomSeverity = "none"
	SeverityMild     SymptomSeverity = "mild"
	SeverityModerate SymptomSeverity = "moderate"
	SeveritySevere   SymptomSeverity = "severe"
)

// Valid reports whether s is a known severity.
func (s SymptomSeverity) Valid() bool {
	switch s {
	case SeverityNone, SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// Rank returns the strict ordering severe > moderate > mild > none.
// Unknown severities rank below none.
func (s SymptomSeverity) Rank() int {
	switch s {
	case SeveritySevere:
		return 3
	case SeverityModerate:
		return 2
	case SeverityMild:
		return 1
	case SeverityNone:
		return 0
	}
	return -1
}

// ToleranceStatus is the post-hoc classification of a food test.
type ToleranceStatus string

const (
	StatusTolerated ToleranceStatus = "tolerated"
	StatusSensitive ToleranceStatus = "sensitive"
	StatusTrigger   ToleranceStatus = "trigger"
	StatusUntested  ToleranceStatus = "untested"
)

// Valid reports whether t is a known tolerance status.
func (t ToleranceStatus) Valid() bool {
	switch t {
	case StatusTolerated, StatusSensitive, StatusTrigger, StatusUntested:
		return true
	}
	return false
}

// ProtocolPhase is the coarse state of the overall protocol.
type ProtocolPhase string

const (
	PhaseTesting   ProtocolPhase = "testing"
	PhaseWashout   ProtocolPhase = "washout"
	PhaseCompleted ProtocolPhase = "completed"
)

// Valid reports whether p is a known phase.
func (p ProtocolPhase) Valid() bool {
	switch p {
	case PhaseTesting, PhaseWashout, PhaseCompleted:
		return true
	}
	return false
}

// ActionType identifies the decision the engine hands back to the caller.
type ActionType string

const (
	ActionStartDose       ActionType = "start_dose"
	ActionContinueWashout ActionType = "continue_washout"
	// ActionStartNextFood is reserved for multi-food group testing and is
	// currently never emitted.
	ActionStartNextFood    ActionType = "start_next_food"
	ActionStartNextGroup   ActionType = "start_next_group"
	ActionProtocolComplete ActionType = "protocol_complete"
	ActionError            ActionType = "error"
)

// Valid reports whether a is a known action type.
func (a ActionType) Valid() bool {
	switch a {
	case ActionStartDose, ActionContinueWashout, ActionStartNextFood,
		ActionStartNextGroup, ActionProtocolComplete, ActionError:
		return true
	}
	return false
}
