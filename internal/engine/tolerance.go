package engine

import (
	"github.com/fodmaplab/reintro/pkg/domain"
)

// Classification is the post-hoc verdict on a completed or interrupted test.
type Classification struct {
	Status domain.ToleranceStatus
	// MaxToleratedPortion is the last portion taken without a moderate or
	// severe reaction. Empty when none was.
	MaxToleratedPortion string
	// TriggerPortion is the portion that provoked the stopping reaction.
	TriggerPortion string
}

// ClassifyTolerance classifies a food test from its doses, taken in day order.
//
//   - No doses: untested.
//   - All doses none/mild: tolerated, with the last dose's portion.
//   - First problem dose severe: trigger, with that dose's portion and no
//     tolerated portion reported.
//   - First problem dose moderate: sensitive, with the most recent prior
//     none/mild portion (absent when the problem hit day 1) and the problem
//     dose's portion.
func ClassifyTolerance(doses []domain.DoseRecord) Classification {
	if len(doses) == 0 {
		return Classification{Status: domain.StatusUntested}
	}

	for i, dose := range doses {
		severity := AnalyzeSymptoms(dose.Symptoms)
		if severity.Rank() < domain.SeverityModerate.Rank() {
			continue
		}

		if severity == domain.SeveritySevere {
			return Classification{
				Status:         domain.StatusTrigger,
				TriggerPortion: dose.PortionSize,
			}
		}

		c := Classification{
			Status:         domain.StatusSensitive,
			TriggerPortion: dose.PortionSize,
		}
		if i > 0 {
			c.MaxToleratedPortion = doses[i-1].PortionSize
		}
		return c
	}

	return Classification{
		Status:              domain.StatusTolerated,
		MaxToleratedPortion: doses[len(doses)-1].PortionSize,
	}
}
