package engine

import (
	"fmt"
	"time"

	"github.com/fodmaplab/reintro/pkg/domain"
)

const day = 24 * time.Hour

// CalculateWashout derives the washout period mandated by the worst severity
// observed during a test. The end date is calendar-day arithmetic from the
// start, preserving time-of-day.
func CalculateWashout(maxSeverity domain.SymptomSeverity, startDate time.Time) domain.WashoutPeriod {
	days := WashoutDuration(maxSeverity)
	return domain.WashoutPeriod{
		StartDate:    startDate,
		EndDate:      startDate.AddDate(0, 0, days),
		DurationDays: days,
		Reason:       fmt.Sprintf("%s symptoms require %d-day washout", maxSeverity, days),
	}
}

// WashoutStatus reports a washout period's progress against a timestamp.
type WashoutStatus struct {
	DaysRemaining int
	Complete      bool
}

// CheckWashoutStatus computes remaining days against now. Partial days round
// up: a washout ending in 20 hours still reports 1 day remaining. The count
// is never negative, and Complete holds exactly when now >= endDate.
func CheckWashoutStatus(washout *domain.WashoutPeriod, now time.Time) WashoutStatus {
	if !now.Before(washout.EndDate) {
		return WashoutStatus{DaysRemaining: 0, Complete: true}
	}
	left := washout.EndDate.Sub(now)
	days := int(left / day)
	if left%day > 0 {
		days++
	}
	return WashoutStatus{DaysRemaining: days, Complete: false}
}
