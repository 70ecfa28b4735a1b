package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fodmaplab/reintro/internal/logging"
	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/schema"
)

// Engine is the protocol decision core: a pure projection
// (snapshot, now) -> NextAction. It reads no clock, performs no I/O and
// holds no state between calls, so identical inputs always produce
// value-equal outputs and concurrent use is safe.
type Engine struct {
	logger *slog.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for debug traces. Decisions never
// depend on it.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates a decision engine.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NextAction computes the single next step for the patient.
//
// Malformed input (shape, enums, ranges) is rejected with an error: the
// caller passed broken data and must fix it. Semantic inconsistencies
// (conflicting sub-states, dose gaps, inverted dates) come back as a
// non-exceptional error action carrying every violation found.
func (e *Engine) NextAction(state *domain.ProtocolState, now time.Time) (*domain.NextAction, error) {
	if err := schema.CheckState(state); err != nil {
		return nil, fmt.Errorf("invalid protocol state: %w", err)
	}

	if result := ValidateState(state); !result.Valid {
		e.logger.Debug("inconsistent protocol state",
			"user_id", state.UserID, "violations", len(result.Errors))
		return &domain.NextAction{
			Action:  domain.ActionError,
			Phase:   state.Phase,
			Message: "The stored protocol state is inconsistent and needs correction.",
			Instructions: []string{
				"Review the listed problems",
				"Correct the stored protocol data before asking for the next step",
			},
			Errors: result.Errors,
		}, nil
	}

	switch {
	case state.CurrentWashout != nil:
		return e.handleWashout(state, now)
	case state.CurrentTest != nil:
		return e.handleCurrentTest(state, now)
	default:
		return e.determineNextTest(state, now)
	}
}
