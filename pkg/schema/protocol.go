package schema

import (
	"fmt"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// Field validators shared by the typed checker and the HTTP boundary.
var (
	GroupType = Enum("FODMAPGroup",
		string(domain.GroupFructose), string(domain.GroupLactose),
		string(domain.GroupFructans), string(domain.GroupGalactans),
		string(domain.GroupPolyols))
	SeverityType = Enum("SymptomSeverity",
		string(domain.SeverityNone), string(domain.SeverityMild),
		string(domain.SeverityModerate), string(domain.SeveritySevere))
	ToleranceType = Enum("ToleranceStatus",
		string(domain.StatusTolerated), string(domain.StatusSensitive),
		string(domain.StatusTrigger), string(domain.StatusUntested))
	PhaseType = Enum("ProtocolPhase",
		string(domain.PhaseTesting), string(domain.PhaseWashout),
		string(domain.PhaseCompleted))
	ActionTypeType = Enum("ActionType",
		string(domain.ActionStartDose), string(domain.ActionContinueWashout),
		string(domain.ActionStartNextFood), string(domain.ActionStartNextGroup),
		string(domain.ActionProtocolComplete), string(domain.ActionError))

	DayNumberType     = IntRange(1, 3)
	DurationDaysType  = IntRange(3, 7)
	PortionAmountType = PositiveNumber()
)

// checker accumulates path-qualified violations.
type checker struct {
	errs []error
}

func (c *checker) fail(path, reason string, value any) {
	c.errs = append(c.errs, &ValidationError{Path: path, Reason: reason, Value: value})
}

func (c *checker) check(path string, t Type, value any) {
	if err := t.Validate(value); err != nil {
		c.fail(path, err.Error(), nil)
	}
}

func (c *checker) result() error {
	if len(c.errs) > 0 {
		return &AggregateError{Errors: c.errs}
	}
	return nil
}

// CheckState validates the structural shape of a protocol snapshot: required
// fields, enumerations and numeric ranges. It accumulates every violation.
//
// Cross-field consistency (mutual exclusion, dose ordering, date ordering)
// is intentionally out of scope here; see the engine's state validator.
func CheckState(state *domain.ProtocolState) error {
	c := &checker{}
	if state == nil {
		c.fail("state", "required", nil)
		return c.result()
	}

	if state.UserID == "" {
		c.fail("userId", "required", nil)
	}
	if state.StartDate.IsZero() {
		c.fail("startDate", "required", nil)
	}
	c.check("phase", PhaseType, string(state.Phase))

	for i, g := range state.GroupSequence {
		c.check(fmt.Sprintf("groupSequence[%d]", i), GroupType, string(g))
	}

	for i, test := range state.CompletedTests {
		c.checkFoodTest(fmt.Sprintf("completedTests[%d]", i), &test, 1)
	}

	if state.CurrentTest != nil {
		// An active test may legitimately have zero doses (about to start day 1).
		c.checkFoodTest("currentTest", state.CurrentTest, 0)
	}

	if w := state.CurrentWashout; w != nil {
		if w.StartDate.IsZero() {
			c.fail("currentWashout.startDate", "required", nil)
		}
		if w.EndDate.IsZero() {
			c.fail("currentWashout.endDate", "required", nil)
		}
		c.check("currentWashout.durationDays", DurationDaysType, w.DurationDays)
	}

	return c.result()
}

func (c *checker) checkFoodTest(path string, test *domain.FoodTestResult, minDoses int) {
	if test.FoodItem == "" {
		c.fail(path+".foodItem", "required", nil)
	}
	c.check(path+".fodmapGroup", GroupType, string(test.FODMAPGroup))
	c.check(path+".toleranceStatus", ToleranceType, string(test.ToleranceStatus))
	if test.StartDate.IsZero() {
		c.fail(path+".startDate", "required", nil)
	}

	if len(test.Doses) < minDoses || len(test.Doses) > 3 {
		c.fail(path+".doses", fmt.Sprintf("expected %d-3 doses, got %d", minDoses, len(test.Doses)), len(test.Doses))
	}
	for i, dose := range test.Doses {
		c.checkDose(fmt.Sprintf("%s.doses[%d]", path, i), &dose)
	}
}

func (c *checker) checkDose(path string, dose *domain.DoseRecord) {
	if dose.Date.IsZero() {
		c.fail(path+".date", "required", nil)
	}
	c.check(path+".dayNumber", DayNumberType, dose.DayNumber)
	if dose.FoodItem == "" {
		c.fail(path+".foodItem", "required", nil)
	}
	if dose.PortionSize == "" {
		c.fail(path+".portionSize", "required", nil)
	}
	c.check(path+".portionAmount", PortionAmountType, dose.PortionAmount)

	for i, sym := range dose.Symptoms {
		symPath := fmt.Sprintf("%s.symptoms[%d]", path, i)
		if sym.Timestamp.IsZero() {
			c.fail(symPath+".timestamp", "required", nil)
		}
		c.check(symPath+".severity", SeverityType, string(sym.Severity))
	}
}

// CheckNextAction validates the structural shape of a decision before it
// crosses the system edge.
func CheckNextAction(action *domain.NextAction) error {
	c := &checker{}
	if action == nil {
		c.fail("action", "required", nil)
		return c.result()
	}

	c.check("action", ActionTypeType, string(action.Action))
	c.check("phase", PhaseType, string(action.Phase))
	if action.CurrentGroup != "" {
		c.check("currentGroup", GroupType, string(action.CurrentGroup))
	}
	if action.CurrentDayNumber != 0 {
		c.check("currentDayNumber", DayNumberType, action.CurrentDayNumber)
	}
	if action.WashoutDaysRemaining < 0 {
		c.fail("washoutDaysRemaining", "must not be negative", action.WashoutDaysRemaining)
	}

	return c.result()
}
