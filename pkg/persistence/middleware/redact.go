package middleware

import (
	"context"
	"regexp"

	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/ports"
)

// Mask replaces matched note fragments before a snapshot is persisted.
const Mask = "[REDACTED]"

type redactMiddleware struct {
	next     ports.ProtocolStore
	patterns []*regexp.Regexp
}

// NewRedactMiddleware creates a middleware that masks fragments of free-text
// notes (dose and symptom notes) matching the given patterns before the
// snapshot reaches the underlying store. Structured protocol data is never
// touched, so decisions and reports stay intact.
func NewRedactMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.ProtocolStore) ports.ProtocolStore {
		return &redactMiddleware{next: next, patterns: patterns}
	}
}

func (m *redactMiddleware) Save(ctx context.Context, userID string, state *domain.ProtocolState) error {
	// Deep clone to avoid side effects on the in-memory snapshot used by
	// the caller.
	cloned := *state
	cloned.CompletedTests = make([]domain.FoodTestResult, len(state.CompletedTests))
	for i, test := range state.CompletedTests {
		cloned.CompletedTests[i] = m.redactTest(test)
	}
	if state.CurrentTest != nil {
		redacted := m.redactTest(*state.CurrentTest)
		cloned.CurrentTest = &redacted
	}

	return m.next.Save(ctx, userID, &cloned)
}

func (m *redactMiddleware) Load(ctx context.Context, userID string) (*domain.ProtocolState, error) {
	return m.next.Load(ctx, userID)
}

func (m *redactMiddleware) Delete(ctx context.Context, userID string) error {
	return m.next.Delete(ctx, userID)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func (m *redactMiddleware) redactTest(test domain.FoodTestResult) domain.FoodTestResult {
	doses := make([]domain.DoseRecord, len(test.Doses))
	for i, dose := range test.Doses {
		dose.Notes = m.mask(dose.Notes)
		symptoms := make([]domain.SymptomRecord, len(dose.Symptoms))
		for j, sym := range dose.Symptoms {
			sym.Notes = m.mask(sym.Notes)
			symptoms[j] = sym
		}
		dose.Symptoms = symptoms
		doses[i] = dose
	}
	test.Doses = doses
	return test
}

func (m *redactMiddleware) mask(text string) string {
	for _, pattern := range m.patterns {
		text = pattern.ReplaceAllString(text, Mask)
	}
	return text
}
