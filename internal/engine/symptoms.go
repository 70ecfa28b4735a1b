package engine

import (
	"github.com/fodmaplab/reintro/pkg/domain"
)

// AnalyzeSymptoms aggregates logged symptoms into one overall severity: the
// highest present under severe > moderate > mild > none. An empty list means
// no reaction.
func AnalyzeSymptoms(symptoms []domain.SymptomRecord) domain.SymptomSeverity {
	max := domain.SeverityNone
	for _, s := range symptoms {
		if s.Severity.Rank() > max.Rank() {
			max = s.Severity
		}
	}
	return max
}

// ShouldStopTest reports whether the current test must be aborted after a
// dose with the given overall severity. Severe reactions always abort;
// moderate reactions abort only on day 1, the most cautious exposure.
func ShouldStopTest(severity domain.SymptomSeverity, dayNumber int) bool {
	if severity == domain.SeveritySevere {
		return true
	}
	return severity == domain.SeverityModerate && dayNumber == 1
}
