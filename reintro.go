package reintro

import (
	"log/slog"
	"time"

	"github.com/fodmaplab/reintro/internal/engine"
	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/schema"
)

// Version is the library version.
const Version = "0.2.0"

// Engine is the public entry point for computing protocol decisions.
type Engine struct {
	core     *engine.Engine
	sequence []domain.FODMAPGroup
}

// Option configures the engine.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	sequence []domain.FODMAPGroup
}

// WithLogger attaches a structured logger for debug traces. Decisions never
// depend on it.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGroupSequence sets a default group-testing order applied to snapshots
// that carry no explicit sequence of their own. A sequence stored on the
// snapshot always wins.
func WithGroupSequence(groups ...domain.FODMAPGroup) Option {
	return func(o *options) {
		o.sequence = append([]domain.FODMAPGroup(nil), groups...)
	}
}

// New creates a decision engine.
func New(opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	coreOpts := []engine.EngineOption{}
	if o.logger != nil {
		coreOpts = append(coreOpts, engine.WithLogger(o.logger))
	}
	return &Engine{core: engine.New(coreOpts...), sequence: o.sequence}
}

// NextAction computes the next protocol step for a snapshot at the given
// time. Malformed snapshots are rejected with an error; semantically
// inconsistent ones produce an "error" action listing every violation.
func (e *Engine) NextAction(state *domain.ProtocolState, now time.Time) (*domain.NextAction, error) {
	return e.core.NextAction(e.applySequence(state), now)
}

// applySequence copies the snapshot with the configured default sequence when
// the snapshot has none. The caller's value is never mutated.
func (e *Engine) applySequence(state *domain.ProtocolState) *domain.ProtocolState {
	if state == nil || len(e.sequence) == 0 || len(state.GroupSequence) > 0 {
		return state
	}
	copied := *state
	copied.GroupSequence = append([]domain.FODMAPGroup(nil), e.sequence...)
	return &copied
}

// ValidationReport is the outcome of a semantic consistency check.
type ValidationReport struct {
	Valid    bool
	Problems []string
}

// Validate checks a snapshot without computing a decision. Shape violations
// (missing fields, bad enums, out-of-range values) are returned as an error;
// cross-field inconsistencies land in the report.
func (e *Engine) Validate(state *domain.ProtocolState) (ValidationReport, error) {
	if err := schema.CheckState(state); err != nil {
		return ValidationReport{}, err
	}
	result := engine.ValidateState(state)
	return ValidationReport{Valid: result.Valid, Problems: result.Errors}, nil
}

// Summary aggregates the completed tests of a snapshot.
func (e *Engine) Summary(state *domain.ProtocolState) *domain.ProtocolSummary {
	return engine.Summarize(state)
}

// ToleranceClassification is the outcome of classifying a finished food test.
type ToleranceClassification struct {
	Status              domain.ToleranceStatus
	MaxToleratedPortion string
	TriggerPortion      string
}

// Classify derives the tolerance outcome for a sequence of dose records.
func (e *Engine) Classify(doses []domain.DoseRecord) ToleranceClassification {
	c := engine.ClassifyTolerance(doses)
	return ToleranceClassification{
		Status:              c.Status,
		MaxToleratedPortion: c.MaxToleratedPortion,
		TriggerPortion:      c.TriggerPortion,
	}
}
