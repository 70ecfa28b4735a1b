package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fodmaplab/reintro/pkg/domain"
)

func sym(severity domain.SymptomSeverity) domain.SymptomRecord {
	return domain.SymptomRecord{
		Timestamp: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		Severity:  severity,
		Type:      "bloating",
	}
}

func TestAnalyzeSymptoms(t *testing.T) {
	tests := []struct {
		name     string
		symptoms []domain.SymptomRecord
		want     domain.SymptomSeverity
	}{
		{"empty list means no reaction", nil, domain.SeverityNone},
		{"single mild", []domain.SymptomRecord{sym(domain.SeverityMild)}, domain.SeverityMild},
		{"highest wins", []domain.SymptomRecord{sym(domain.SeverityMild), sym(domain.SeveritySevere), sym(domain.SeverityModerate)}, domain.SeveritySevere},
		{"moderate over mild", []domain.SymptomRecord{sym(domain.SeverityModerate), sym(domain.SeverityMild)}, domain.SeverityModerate},
		{"explicit none entries", []domain.SymptomRecord{sym(domain.SeverityNone), sym(domain.SeverityNone)}, domain.SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeSymptoms(tt.symptoms))
		})
	}
}

func TestShouldStopTest(t *testing.T) {
	tests := []struct {
		severity domain.SymptomSeverity
		day      int
		want     bool
	}{
		{domain.SeveritySevere, 1, true},
		{domain.SeveritySevere, 2, true},
		{domain.SeveritySevere, 3, true},
		{domain.SeverityModerate, 1, true},
		{domain.SeverityModerate, 2, false},
		{domain.SeverityModerate, 3, false},
		{domain.SeverityMild, 1, false},
		{domain.SeverityMild, 3, false},
		{domain.SeverityNone, 1, false},
		{domain.SeverityNone, 2, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldStopTest(tt.severity, tt.day),
			"severity=%s day=%d", tt.severity, tt.day)
	}
}
